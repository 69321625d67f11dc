package server

import (
	"git.appkode.ru/pub/go/failure"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"shipquote/internal/domain"
	"shipquote/pkg/errcodes"
)

const (
	outcomeSuccess              = "success"
	outcomeEmailTextRequired    = "email_text_required"
	outcomeIncompleteExtraction = "incomplete_extraction"
	outcomeInvalidJSON          = "invalid_json"
	outcomeError                = "error"
)

// Metrics counts quote requests by outcome and extraction fields that could
// not be found.
type Metrics struct {
	requests      *prometheus.CounterVec
	missingFields *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipquote",
			Name:      "quote_requests_total",
			Help:      "Quote requests by outcome.",
		}, []string{"outcome"}),
		missingFields: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shipquote",
			Name:      "missing_fields_total",
			Help:      "Extraction fields that were not found in inquiry texts.",
		}, []string{"field"}),
	}
}

// observe records a request given the error of the request reader or of
// the shipment service, before it is turned into a response.
func (m *Metrics) observe(err error) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(outcome(err)).Inc()

	if appErr, ok := domain.AsAppError(err); ok && appErr.Code == errcodes.IncompleteExtraction {
		for _, field := range appErr.Fields {
			m.missingFields.WithLabelValues(field).Inc()
		}
	}
}

func outcome(err error) string {
	if err == nil {
		return outcomeSuccess
	}

	code, ok := domain.GetCode(err)
	if !ok {
		code = failure.Code(err)
	}

	switch code {
	case errcodes.EmailTextRequired, errcodes.ValidationError:
		return outcomeEmailTextRequired
	case errcodes.IncompleteExtraction:
		return outcomeIncompleteExtraction
	case errcodes.InvalidJSON:
		return outcomeInvalidJSON
	default:
		return outcomeError
	}
}
