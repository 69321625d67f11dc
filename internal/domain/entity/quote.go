package entity

type Quote struct {
	Carrier string
	Price   float64
}

type QuoteResult struct {
	Payload Payload
	Quotes  []Quote
}
