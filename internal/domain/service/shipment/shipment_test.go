package shipment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shipquote/internal/domain"
	"shipquote/internal/domain/entity"
	"shipquote/internal/domain/service/extract"
	"shipquote/internal/domain/service/quote"
	"shipquote/internal/domain/service/shipment"
	"shipquote/internal/domain/value"
	"shipquote/pkg/errcodes"
)

type placeDetectorFunc func(ctx context.Context, text string) ([]string, error)

func (f placeDetectorFunc) DetectPlaces(ctx context.Context, text string) ([]string, error) {
	return f(ctx, text)
}

func newService(places ...string) *shipment.Service {
	detector := placeDetectorFunc(func(context.Context, string) ([]string, error) {
		return places, nil
	})

	return shipment.NewService(
		extract.NewExtractor(detector),
		quote.NewQuoter(quote.DefaultCarriers, quote.DefaultVolumeRate),
	).WithClock(func() time.Time {
		return time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	})
}

func TestServiceQuote(t *testing.T) {
	rq := require.New(t)

	svc := newService("Paris", "Berlin")

	result, err := svc.Quote(context.Background(), "Ship from Paris to Berlin, weight 5kg, box 10x20x30 cm")
	rq.NoError(err)

	rq.Equal(entity.Payload{
		SourceAddress:      "Paris",
		DestinationAddress: "Berlin",
		Package: entity.Package{
			Weight:              value.Weight{Value: 5, Unit: value.WeightUnitKg},
			Dimensions:          value.Dimensions{Length: 10, Width: 20, Height: 30, Unit: value.LengthUnitCm},
			PlannedShippingDate: time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC),
		},
	}, result.Payload)

	rq.Len(result.Quotes, 3)
	rq.Equal("$50.6", quote.FormatPrice(result.Quotes[0].Price))
}

func TestServiceQuoteErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		places  []string
		text    string
		code    string
		missing []string
	}{
		{
			name: "Empty text",
			text: "",
			code: errcodes.EmailTextRequired.String(),
		},
		{
			name:    "Single place",
			places:  []string{"Paris"},
			text:    "Ship from Paris, weight 5kg, box 10x20x30 cm",
			code:    errcodes.IncompleteExtraction.String(),
			missing: []string{entity.FieldSourceAddress, entity.FieldDestinationAddress},
		},
		{
			name:    "No weight",
			places:  []string{"Paris", "Berlin"},
			text:    "Ship from Paris to Berlin, box 10x20x30 cm",
			code:    errcodes.IncompleteExtraction.String(),
			missing: []string{entity.FieldWeight},
		},
		{
			name:    "Whitespace is not empty but extracts nothing",
			text:    "   ",
			code:    errcodes.IncompleteExtraction.String(),
			missing: []string{entity.FieldSourceAddress, entity.FieldDestinationAddress, entity.FieldWeight, entity.FieldDimensions},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			_, err := newService(tc.places...).Quote(context.Background(), tc.text)
			rq.Error(err)

			appErr, ok := domain.AsAppError(err)
			rq.True(ok)
			rq.Equal(tc.code, appErr.Code.String())
			rq.Equal(tc.missing, appErr.Fields)
		})
	}
}

func TestServiceQuoteDetectorFailure(t *testing.T) {
	rq := require.New(t)

	detectorErr := errors.New("recognizer crashed")

	svc := shipment.NewService(
		extract.NewExtractor(placeDetectorFunc(func(context.Context, string) ([]string, error) {
			return nil, detectorErr
		})),
		quote.NewQuoter(quote.DefaultCarriers, quote.DefaultVolumeRate),
	)

	_, err := svc.Quote(context.Background(), "Ship from Paris to Berlin, weight 5kg, box 10x20x30 cm")
	rq.ErrorIs(err, detectorErr)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.PlaceRecognition, code)
}

func TestServiceQuoteImperialUnits(t *testing.T) {
	rq := require.New(t)

	result, err := newService("Boston", "Chicago").Quote(
		context.Background(),
		"From Boston to Chicago, 12.5 lbs, 12x10x8 in",
	)
	rq.NoError(err)

	rq.Equal(value.WeightUnitLbs, result.Payload.Package.Weight.Unit)
	rq.Equal(value.LengthUnitIn, result.Payload.Package.Dimensions.Unit)
	rq.Equal("$125.096", quote.FormatPrice(result.Quotes[0].Price))
	rq.Equal("$150.096", quote.FormatPrice(result.Quotes[1].Price))
	rq.Equal("$175.096", quote.FormatPrice(result.Quotes[2].Price))
}
