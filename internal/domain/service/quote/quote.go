// Package quote prices a shipment payload for a set of carriers with a
// linear weight + volume formula.
package quote

import (
	"shipquote/internal/domain/entity"
	"shipquote/internal/domain/value"
)

const (
	// Dimension values are always read as centimetres, whatever unit was
	// written next to them.
	centimetresPerMetre = 100

	DefaultVolumeRate = 100
)

//nolint:gochecknoglobals
var DefaultCarriers = []value.Carrier{
	{Name: "DHL", WeightRate: 10},
	{Name: "FedEx", WeightRate: 12},
	{Name: "UPS", WeightRate: 14},
}

// Calculate returns weight*weightRate + volume(m³)*volumeRate.
//
// Both products are rounded to float64 before the sum so the compiler cannot
// fuse them into a multiply-add, which would change the last bits of the
// price on some architectures.
func Calculate(payload entity.Payload, weightRate, volumeRate float64) float64 {
	dimensions := payload.Package.Dimensions

	weightCost := float64(payload.Package.Weight.Value * weightRate)

	volume := (dimensions.Length / centimetresPerMetre) *
		(dimensions.Width / centimetresPerMetre) *
		(dimensions.Height / centimetresPerMetre)

	volumeCost := float64(volume * volumeRate)

	return weightCost + volumeCost
}

type Quoter struct {
	carriers   []value.Carrier
	volumeRate float64
}

func NewQuoter(carriers []value.Carrier, volumeRate float64) *Quoter {
	return &Quoter{
		carriers:   carriers,
		volumeRate: volumeRate,
	}
}

func (q *Quoter) Carriers() []value.Carrier {
	return q.carriers
}

// Quote prices payload once per carrier, in carrier order.
func (q *Quoter) Quote(payload entity.Payload) []entity.Quote {
	quotes := make([]entity.Quote, 0, len(q.carriers))

	for _, carrier := range q.carriers {
		quotes = append(quotes, entity.Quote{
			Carrier: carrier.Name,
			Price:   Calculate(payload, carrier.WeightRate, q.volumeRate),
		})
	}

	return quotes
}
