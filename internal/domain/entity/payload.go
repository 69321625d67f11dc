package entity

import (
	"time"

	"shipquote/internal/domain/value"
)

type Package struct {
	Weight              value.Weight
	Dimensions          value.Dimensions
	PlannedShippingDate time.Time
}

// Payload is a complete extraction stamped with a planned shipping date.
// It only exists for extractions where every field was found.
type Payload struct {
	SourceAddress      string
	DestinationAddress string
	Package            Package
}

// Payload assembles the shipping payload. It reports false, and builds
// nothing, unless every extraction field was found.
func (e Extraction) Payload(plannedShippingDate time.Time) (Payload, bool) {
	if !e.Complete() {
		return Payload{}, false
	}

	return Payload{
		SourceAddress:      e.SourceAddress,
		DestinationAddress: e.DestinationAddress,
		Package: Package{
			Weight:              *e.Weight,
			Dimensions:          *e.Dimensions,
			PlannedShippingDate: plannedShippingDate,
		},
	}, true
}
