// Package shipment runs one inquiry through extraction, payload assembly
// and quoting. Every call is independent; the service holds no state
// between requests.
package shipment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipquote/internal/domain"
	"shipquote/internal/domain/entity"
	"shipquote/pkg/contextx"
	"shipquote/pkg/errcodes"
	"shipquote/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type Extractor interface {
	Extract(ctx context.Context, text string) (entity.Extraction, error)
}

type Quoter interface {
	Quote(payload entity.Payload) []entity.Quote
}

type Service struct {
	extractor Extractor
	quoter    Quoter
	now       func() time.Time
}

func NewService(extractor Extractor, quoter Quoter) *Service {
	return &Service{
		extractor: extractor,
		quoter:    quoter,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to stamp the planned shipping date.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Quote extracts a shipment from text and prices it for every carrier.
// Extraction is all-or-nothing: if any field is missing no payload is built
// and an IncompleteExtraction error lists the missing fields.
func (s *Service) Quote(ctx context.Context, text string) (entity.QuoteResult, error) {
	if text == "" {
		return entity.QuoteResult{}, domain.NewError(errcodes.EmailTextRequired, "email text is required")
	}

	extraction, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return entity.QuoteResult{}, domain.WrapError(
			fmt.Errorf("extractor.Extract: %w", err),
			errcodes.PlaceRecognition,
			"extraction failed",
		)
	}

	payload, ok := extraction.Payload(s.now())
	if !ok {
		missing := extraction.MissingFields()

		logger(ctx).Info("incomplete extraction",
			slog.Any(logx.FieldMissingFields, missing),
			slog.Int(logx.FieldTextLength, len(text)),
		)

		return entity.QuoteResult{}, domain.NewError(
			errcodes.IncompleteExtraction,
			"incomplete extraction",
			missing...,
		)
	}

	quotes := s.quoter.Quote(payload)

	for _, q := range quotes {
		logger(ctx).Debug("quote",
			slog.String(logx.FieldCarrier, q.Carrier),
			slog.Float64(logx.FieldQuote, q.Price),
		)
	}

	return entity.QuoteResult{
		Payload: payload,
		Quotes:  quotes,
	}, nil
}
