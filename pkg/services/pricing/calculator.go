package pricing

import (
	"math"

	"github.com/de-tools/order-calc/pkg/models/domain"
)

const (
	FieldQuantity      = "quantity"
	FieldUnitPrice     = "unit_price"
	FieldTaxPercentage = "tax_percentage"
)

// Calculate prices an order line. Negative values and tax rates above 100 are
// accepted and priced as given.
func Calculate(quantity int, unitPrice, taxPercentage float64) domain.OrderSummary {
	subtotal := float64(quantity) * unitPrice
	taxAmount := (taxPercentage / 100) * subtotal

	return domain.OrderSummary{
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		Subtotal:      subtotal,
		TaxPercentage: taxPercentage,
		TaxAmount:     taxAmount,
		FinalPrice:    subtotal + taxAmount,
	}
}

// CalculateFinalPrice is Calculate for loosely typed input. Quantity must be an
// integer type that fits in an int, unit price and tax percentage any integer
// or float type.
// Strings are never parsed; nil counts as a missing value.
func CalculateFinalPrice(quantity, unitPrice, taxPercentage any) (domain.OrderSummary, error) {
	q, ok := asInt(quantity)
	if !ok {
		return domain.OrderSummary{}, &TypeMismatchError{Field: FieldQuantity, Value: quantity}
	}
	p, ok := asFloat(unitPrice)
	if !ok {
		return domain.OrderSummary{}, &TypeMismatchError{Field: FieldUnitPrice, Value: unitPrice}
	}
	t, ok := asFloat(taxPercentage)
	if !ok {
		return domain.OrderSummary{}, &TypeMismatchError{Field: FieldTaxPercentage, Value: taxPercentage}
	}

	return Calculate(q, p, t), nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		return fromUint64(uint64(n))
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return fromUint64(uint64(n))
	case uint64:
		return fromUint64(n)
	}
	return 0, false
}

// fromUint64 refuses values that would wrap to a negative int.
func fromUint64(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := asInt(v); ok {
		return float64(i), true
	}
	return 0, false
}
