package entity

import "shipquote/internal/domain/value"

const (
	FieldSourceAddress      = "sourceAddress"
	FieldDestinationAddress = "destinationAddress"
	FieldWeight             = "weight"
	FieldDimensions         = "dimensions"
)

// Extraction is what the extractors recovered from one inquiry text. A nil
// or empty field was not found.
type Extraction struct {
	SourceAddress      string
	DestinationAddress string
	Weight             *value.Weight
	Dimensions         *value.Dimensions
}

// MissingFields lists the fields that block payload assembly, in payload
// order.
func (e Extraction) MissingFields() []string {
	var missing []string

	if e.SourceAddress == "" {
		missing = append(missing, FieldSourceAddress)
	}

	if e.DestinationAddress == "" {
		missing = append(missing, FieldDestinationAddress)
	}

	if e.Weight == nil {
		missing = append(missing, FieldWeight)
	}

	if e.Dimensions == nil {
		missing = append(missing, FieldDimensions)
	}

	return missing
}

func (e Extraction) Complete() bool {
	return len(e.MissingFields()) == 0
}
