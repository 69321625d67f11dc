package value

type WeightUnit string

const (
	WeightUnitKg        WeightUnit = "kg"
	WeightUnitLb        WeightUnit = "lb"
	WeightUnitLbs       WeightUnit = "lbs"
	WeightUnitKilograms WeightUnit = "kilograms"
	WeightUnitPounds    WeightUnit = "pounds"
)

func (u WeightUnit) String() string {
	return string(u)
}

// Weight is a parsed weight mention. Value keeps the number as written; no
// conversion between units happens anywhere.
type Weight struct {
	Value float64
	Unit  WeightUnit
}
