package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"shipquote/internal/domain"
	"shipquote/internal/domain/entity"
	"shipquote/pkg/errcodes"
	"shipquote/pkg/httpx/reply"
	"shipquote/pkg/httpx/req"
	"shipquote/pkg/rest"
)

const (
	messageEmailTextRequired    = "Email text is required"
	messageIncompleteExtraction = "Could not extract all required information"
)

type shipmentService interface {
	Quote(ctx context.Context, text string) (entity.QuoteResult, error)
}

type QuoteServer struct {
	shipmentService shipmentService
	metrics         *Metrics
}

func NewQuoteServer(shipmentService shipmentService, metrics *Metrics) QuoteServer {
	return QuoteServer{
		shipmentService: shipmentService,
		metrics:         metrics,
	}
}

func (s QuoteServer) postGetQuotes(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.QuoteRequest

	if err := req.Read(r, &request); err != nil {
		s.metrics.observe(err)

		if failure.Code(err) == errcodes.ValidationError {
			return emailTextRequired(err)
		}

		return fmt.Errorf("req.Read: %w", err)
	}

	result, err := s.shipmentService.Quote(ctx, request.Text)
	s.metrics.observe(err)

	if err != nil {
		return newFailure(fmt.Errorf("shipmentService.Quote: %w", err))
	}

	reply.JSON(ctx, w, http.StatusOK, NewRESTQuoteResponse(result))

	return nil
}

// newFailure turns client-caused domain errors into invalid-argument
// failures. Everything else is returned unchanged and becomes a 500.
func newFailure(err error) error {
	code, ok := domain.GetCode(err)
	if !ok {
		return err
	}

	switch code {
	case errcodes.EmailTextRequired:
		return emailTextRequired(err)
	case errcodes.IncompleteExtraction:
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.IncompleteExtraction),
			failure.WithDescription(messageIncompleteExtraction),
		)
	default:
		return err
	}
}

// Describe returns the message the API answers with for an error of the
// shipment service.
func Describe(err error) string {
	err = newFailure(err)

	if reply.StatusCode(err) < http.StatusInternalServerError {
		if description := failure.Description(err); description != "" {
			return description
		}
	}

	return http.StatusText(http.StatusInternalServerError)
}

func emailTextRequired(err error) error {
	return failure.NewInvalidArgumentErrorFromError(
		err,
		failure.WithCode(errcodes.EmailTextRequired),
		failure.WithDescription(messageEmailTextRequired),
	)
}
