// Package rest holds the wire types of the quoting API.
package rest

// QuoteRequest is the body of POST /get-quotes.
type QuoteRequest struct {
	Text string `json:"text" validate:"required"`
}

type Weight struct {
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit"  yaml:"unit"`
}

type Dimensions struct {
	Length float64 `json:"length" yaml:"length"`
	Width  float64 `json:"width"  yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Unit   string  `json:"unit"   yaml:"unit"`
}

type Package struct {
	Weight              Weight     `json:"weight"              yaml:"weight"`
	Dimensions          Dimensions `json:"dimensions"          yaml:"dimensions"`
	PlannedShippingDate string     `json:"plannedShippingDate" yaml:"plannedShippingDate"`
}

type Extraction struct {
	SourceAddress      string  `json:"sourceAddress"      yaml:"sourceAddress"`
	DestinationAddress string  `json:"destinationAddress" yaml:"destinationAddress"`
	Package            Package `json:"package"            yaml:"package"`
}

// QuoteResponse maps carrier names to prices formatted as "$<number>".
type QuoteResponse struct {
	Success    bool              `json:"success"    yaml:"success"`
	Extraction Extraction        `json:"extraction" yaml:"extraction"`
	Quotes     map[string]string `json:"quotes"     yaml:"quotes"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Error string `json:"error" yaml:"error"`
}
