package value

// Carrier is a quoted shipping company and its price per unit of weight.
type Carrier struct {
	Name       string
	WeightRate float64
}
