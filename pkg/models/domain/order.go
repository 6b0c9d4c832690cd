package domain

import "math"

// OrderSummary is the priced result of a single order line.
type OrderSummary struct {
	Quantity      int
	UnitPrice     float64
	Subtotal      float64 // Quantity * UnitPrice
	TaxPercentage float64 // 20 means 20%
	TaxAmount     float64 // TaxPercentage / 100 * Subtotal
	FinalPrice    float64 // Subtotal + TaxAmount
}

// Finite reports whether every amount is a real number, i.e. none overflowed
// to an infinity or came from a NaN input.
func (s OrderSummary) Finite() bool {
	for _, v := range []float64{s.UnitPrice, s.Subtotal, s.TaxPercentage, s.TaxAmount, s.FinalPrice} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type TaxProfile struct {
	Name          string
	TaxPercentage float64
	Description   string
}
