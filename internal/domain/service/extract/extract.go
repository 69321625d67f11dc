// Package extract turns a free-text shipment inquiry into an
// entity.Extraction. Weight and dimensions come from fixed patterns; place
// names come from a PlaceDetector, of which only the first two are used.
package extract

import (
	"context"
	"fmt"

	"shipquote/internal/domain/entity"
)

// PlaceDetector finds place names in text, in the order they appear.
type PlaceDetector interface {
	DetectPlaces(ctx context.Context, text string) ([]string, error)
}

type Extractor struct {
	places PlaceDetector
}

func NewExtractor(places PlaceDetector) *Extractor {
	return &Extractor{
		places: places,
	}
}

// Extract runs all three extractors over text. Fields that could not be
// found are left empty; only a detector failure is an error.
func (e *Extractor) Extract(ctx context.Context, text string) (entity.Extraction, error) {
	places, err := e.places.DetectPlaces(ctx, text)
	if err != nil {
		return entity.Extraction{}, fmt.Errorf("places.DetectPlaces: %w", err)
	}

	source, destination := Route(places)

	return entity.Extraction{
		SourceAddress:      source,
		DestinationAddress: destination,
		Weight:             Weight(text),
		Dimensions:         Dimensions(text),
	}, nil
}

// Route picks source and destination by position: the first place is the
// source, the second the destination, the rest are ignored. With fewer than
// two places both are empty.
func Route(places []string) (source, destination string) {
	if len(places) < 2 { //nolint:mnd
		return "", ""
	}

	return places[0], places[1]
}
