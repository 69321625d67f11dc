package server_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"shipquote/internal/domain/entity"
	"shipquote/internal/domain/service/extract"
	"shipquote/internal/domain/service/quote"
	"shipquote/internal/domain/service/shipment"
	"shipquote/internal/infrastructure/places"
	"shipquote/internal/server"
	"shipquote/pkg/httpx"
	"shipquote/pkg/logx"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	gazetteer, err := places.NewGazetteer()
	require.NoError(t, err)

	svc := shipment.NewService(
		extract.NewExtractor(gazetteer),
		quote.NewQuoter(quote.DefaultCarriers, quote.DefaultVolumeRate),
	).WithClock(func() time.Time {
		return time.Date(2026, time.October, 18, 9, 30, 0, 0, time.Local)
	})

	return newHandler(svc)
}

type shipmentService interface {
	Quote(ctx context.Context, text string) (entity.QuoteResult, error)
}

func newHandler(svc shipmentService) http.Handler {
	return server.NewHandler(
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		server.NewServer(server.NewQuoteServer(svc, server.NewMetrics(prometheus.NewRegistry()))),
		logx.NewSensitiveDataMasker(),
		4096,
	)
}

func TestPostGetQuotes(t *testing.T) {
	handler := newTestHandler(t)

	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Paris to Berlin",
			body:       `{"text":"Ship from Paris to Berlin, weight 5kg, box 10x20x30 cm"}`,
			wantStatus: http.StatusOK,
			wantBody: `{
				"success": true,
				"extraction": {
					"sourceAddress": "Paris",
					"destinationAddress": "Berlin",
					"package": {
						"weight": {"value": 5, "unit": "kg"},
						"dimensions": {"length": 10, "width": 20, "height": 30, "unit": "cm"},
						"plannedShippingDate": "2026-10-18"
					}
				},
				"quotes": {"DHL": "$50.6", "FedEx": "$60.6", "UPS": "$70.6"}
			}`,
		},
		{
			name:       "Imperial units are kept and volume stays unit-blind",
			body:       `{"text":"Please quote New York to Toronto. Weight 12.5 LBS, carton 12 x 10 x 8 in."}`,
			wantStatus: http.StatusOK,
			wantBody: `{
				"success": true,
				"extraction": {
					"sourceAddress": "New York",
					"destinationAddress": "Toronto",
					"package": {
						"weight": {"value": 12.5, "unit": "lbs"},
						"dimensions": {"length": 12, "width": 10, "height": 8, "unit": "in"},
						"plannedShippingDate": "2026-10-18"
					}
				},
				"quotes": {"DHL": "$125.096", "FedEx": "$150.096", "UPS": "$175.096"}
			}`,
		},
		{
			name:       "Non-breaking spaces from HTML mail",
			body:       `{"text":"Ship from Paris to Berlin, weight 5\u00a0kg, box 10\u00a0x 20 x 30 cm"}`,
			wantStatus: http.StatusOK,
			wantBody: `{
				"success": true,
				"extraction": {
					"sourceAddress": "Paris",
					"destinationAddress": "Berlin",
					"package": {
						"weight": {"value": 5, "unit": "kg"},
						"dimensions": {"length": 10, "width": 20, "height": 30, "unit": "cm"},
						"plannedShippingDate": "2026-10-18"
					}
				},
				"quotes": {"DHL": "$50.6", "FedEx": "$60.6", "UPS": "$70.6"}
			}`,
		},
		{
			name:       "Only one place",
			body:       `{"text":"Ship from Paris, weight 5kg, box 10x20x30 cm"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Could not extract all required information"}`,
		},
		{
			name:       "No weight",
			body:       `{"text":"Ship from Paris to Berlin, box 10x20x30 cm"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Could not extract all required information"}`,
		},
		{
			name:       "Blank text is not missing",
			body:       `{"text":"   "}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Could not extract all required information"}`,
		},
		{
			name:       "Empty text",
			body:       `{"text":""}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email text is required"}`,
		},
		{
			name:       "No text field",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email text is required"}`,
		},
		{
			name:       "Empty body",
			body:       ``,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Email text is required"}`,
		},
		{
			name:       "Malformed JSON",
			body:       `{"text":`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid JSON"}`,
		},
		{
			name:       "Text is not a string",
			body:       `{"text":42}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid JSON"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/get-quotes", strings.NewReader(tc.body))
			r.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			rq.Equal(tc.wantStatus, w.Code)
			rq.JSONEq(tc.wantBody, w.Body.String())
			rq.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
			rq.NotEmpty(w.Header().Get(httpx.HeaderNameTraceID))
		})
	}
}

func TestPostGetQuotesTraceID(t *testing.T) {
	rq := require.New(t)

	r := httptest.NewRequest(http.MethodPost, "/get-quotes", strings.NewReader(`{"text":""}`))
	r.Header.Set(httpx.HeaderNameTraceID, "inquiry-42")

	w := httptest.NewRecorder()

	newTestHandler(t).ServeHTTP(w, r)

	rq.Equal("inquiry-42", w.Header().Get(httpx.HeaderNameTraceID))
}

func TestPostGetQuotesIdempotent(t *testing.T) {
	rq := require.New(t)

	handler := newTestHandler(t)
	body := `{"text":"From Lisbon, Portugal to Madrid: 2.2 kg, 33x44x55cm"}`

	var responses []string

	for range 3 {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/get-quotes", strings.NewReader(body)))

		rq.Equal(http.StatusOK, w.Code)
		responses = append(responses, w.Body.String())
	}

	rq.Equal(responses[0], responses[1])
	rq.Equal(responses[1], responses[2])
	rq.Contains(responses[0], `"sourceAddress":"Lisbon, Portugal"`)
	rq.Contains(responses[0], `"DHL":"$29.986"`)
}

type failingService struct{}

func (failingService) Quote(context.Context, string) (entity.QuoteResult, error) {
	return entity.QuoteResult{}, errors.New("recognizer exploded")
}

func TestPostGetQuotesInternalError(t *testing.T) {
	rq := require.New(t)

	w := httptest.NewRecorder()

	newHandler(failingService{}).ServeHTTP(w, httptest.NewRequest(
		http.MethodPost, "/get-quotes", strings.NewReader(`{"text":"Paris to Berlin"}`),
	))

	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.JSONEq(`{"error":"Internal Server Error"}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	rq := require.New(t)

	handler := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/get-quotes", http.NoBody))
	rq.Equal(http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/quotes", http.NoBody))
	rq.Equal(http.StatusNotFound, w.Code)
}

func TestDescribe(t *testing.T) {
	gazetteer, err := places.NewGazetteer()
	require.NoError(t, err)

	svc := shipment.NewService(
		extract.NewExtractor(gazetteer),
		quote.NewQuoter(quote.DefaultCarriers, quote.DefaultVolumeRate),
	)

	testCases := []struct {
		name string
		text string
		want string
	}{
		{name: "Empty", text: "", want: "Email text is required"},
		{name: "Incomplete", text: "Paris to Berlin", want: "Could not extract all required information"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Quote(context.Background(), tc.text)
			require.Equal(t, tc.want, server.Describe(err))
		})
	}

	require.Equal(t, "Internal Server Error", server.Describe(errors.New("boom")))
}
