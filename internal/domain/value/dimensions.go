package value

type LengthUnit string

const (
	LengthUnitCm     LengthUnit = "cm"
	LengthUnitMm     LengthUnit = "mm"
	LengthUnitIn     LengthUnit = "in"
	LengthUnitInch   LengthUnit = "inch"
	LengthUnitInches LengthUnit = "inches"
	LengthUnitMeters LengthUnit = "meters"
	LengthUnitMetres LengthUnit = "metres"
)

func (u LengthUnit) String() string {
	return string(u)
}

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
	Unit   LengthUnit
}
