package server

import (
	"time"

	"github.com/samber/lo"

	"shipquote/internal/domain/entity"
	"shipquote/internal/domain/service/quote"
	"shipquote/pkg/rest"
)

// NewRESTQuoteResponse renders a quote result the way POST /get-quotes
// answers it.
func NewRESTQuoteResponse(result entity.QuoteResult) rest.QuoteResponse {
	return rest.QuoteResponse{
		Success:    true,
		Extraction: newRESTExtraction(result.Payload),
		Quotes: lo.SliceToMap(result.Quotes, func(q entity.Quote) (string, string) {
			return q.Carrier, quote.FormatPrice(q.Price)
		}),
	}
}

func newRESTExtraction(payload entity.Payload) rest.Extraction {
	weight := payload.Package.Weight
	dimensions := payload.Package.Dimensions

	return rest.Extraction{
		SourceAddress:      payload.SourceAddress,
		DestinationAddress: payload.DestinationAddress,
		Package: rest.Package{
			Weight: rest.Weight{
				Value: weight.Value,
				Unit:  string(weight.Unit),
			},
			Dimensions: rest.Dimensions{
				Length: dimensions.Length,
				Width:  dimensions.Width,
				Height: dimensions.Height,
				Unit:   string(dimensions.Unit),
			},
			PlannedShippingDate: payload.Package.PlannedShippingDate.Format(time.DateOnly),
		},
	}
}
