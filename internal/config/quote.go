package config

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"shipquote/internal/domain/value"
)

type Quote struct {
	CarrierRates map[string]float64 `env:"QUOTE_CARRIER_RATES" envDefault:"DHL:10,FedEx:12,UPS:14" envKeyValSeparator:":" validate:"required,dive,keys,required,endkeys,gt=0"` //nolint:lll
	VolumeRate   float64            `env:"QUOTE_VOLUME_RATE" envDefault:"100" validate:"gte=0"`
}

// Carriers returns the configured carriers ordered by name.
func (q Quote) Carriers() []value.Carrier {
	carriers := lo.MapToSlice(q.CarrierRates, func(name string, rate float64) value.Carrier {
		return value.Carrier{Name: name, WeightRate: rate}
	})

	slices.SortFunc(carriers, func(a, b value.Carrier) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return carriers
}
