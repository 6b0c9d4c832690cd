package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_KnownValues(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		unitPrice     float64
		taxPercentage float64
		subtotal      float64
		taxAmount     float64
		finalPrice    float64
	}{
		{name: "basic", quantity: 5, unitPrice: 10, taxPercentage: 20, subtotal: 50, taxAmount: 10, finalPrice: 60},
		{name: "zero tax", quantity: 2, unitPrice: 30, taxPercentage: 0, subtotal: 60, taxAmount: 0, finalPrice: 60},
		{name: "high tax", quantity: 1, unitPrice: 100, taxPercentage: 100, subtotal: 100, taxAmount: 100, finalPrice: 200},
		{name: "zero quantity", quantity: 0, unitPrice: 50, taxPercentage: 10, subtotal: 0, taxAmount: 0, finalPrice: 0},
		{name: "cli defaults", quantity: 2, unitPrice: 50, taxPercentage: 10, subtotal: 100, taxAmount: 10, finalPrice: 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When
			got := Calculate(tt.quantity, tt.unitPrice, tt.taxPercentage)

			// Then
			assert.Equal(t, tt.quantity, got.Quantity)
			assert.Equal(t, tt.unitPrice, got.UnitPrice)
			assert.Equal(t, tt.taxPercentage, got.TaxPercentage)
			assert.InDelta(t, tt.subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.taxAmount, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.finalPrice, got.FinalPrice, 1e-9)
		})
	}
}

func TestCalculate_NegativeInputsArePricedAsGiven(t *testing.T) {
	t.Run("negative quantity", func(t *testing.T) {
		got := Calculate(-3, 20, 10)
		assert.Less(t, got.Subtotal, 0.0)
		assert.Less(t, got.FinalPrice, 0.0)
	})

	t.Run("negative unit price", func(t *testing.T) {
		got := Calculate(2, -50, 15)
		assert.Less(t, got.Subtotal, 0.0)
		assert.Less(t, got.FinalPrice, 0.0)
	})

	t.Run("negative tax", func(t *testing.T) {
		got := Calculate(2, 100, -10)
		assert.Less(t, got.TaxAmount, 0.0)
		assert.Less(t, got.FinalPrice, got.Subtotal)
	})
}

func TestCalculate_LargeValues(t *testing.T) {
	// When
	got := Calculate(10000, 999.99, 5)

	// Then
	assert.Greater(t, got.FinalPrice, 0.0)
	assert.InDelta(t, got.Subtotal*0.05, got.TaxAmount, 0.005)
}

func TestCalculate_FloatPrecision(t *testing.T) {
	// Given
	expectedSubtotal := 3 * 19.99
	expectedTax := expectedSubtotal * 0.075

	// When
	got := Calculate(3, 19.99, 7.5)

	// Then
	assert.InDelta(t, expectedSubtotal, got.Subtotal, 0.005)
	assert.InDelta(t, expectedTax, got.TaxAmount, 0.005)
	assert.InDelta(t, expectedSubtotal+expectedTax, got.FinalPrice, 0.005)
}

func TestCalculate_Invariants(t *testing.T) {
	for _, q := range []int{-7, -1, 0, 1, 3, 250} {
		for _, p := range []float64{-12.5, 0, 0.01, 19.99, 1000} {
			for _, tax := range []float64{-10, 0, 7.5, 20, 150} {
				got := Calculate(q, p, tax)

				assert.InDelta(t, float64(q)*p, got.Subtotal, 1e-9)
				assert.InDelta(t, tax/100*float64(q)*p, got.TaxAmount, 1e-9)
				assert.InDelta(t, float64(q)*p*(1+tax/100), got.FinalPrice, 1e-6)
				assert.InDelta(t, got.Subtotal+got.TaxAmount, got.FinalPrice, 1e-9)
			}
		}
	}
}

func TestCalculateFinalPrice_AcceptsNumericTypes(t *testing.T) {
	// When
	got, err := CalculateFinalPrice(int64(5), 10, float32(20))

	// Then
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)
	assert.InDelta(t, 50.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 10.0, got.TaxAmount, 1e-9)
	assert.InDelta(t, 60.0, got.FinalPrice, 1e-9)
}

func TestCalculateFinalPrice_AcceptsLargestUnsignedQuantity(t *testing.T) {
	// When
	got, err := CalculateFinalPrice(uint64(math.MaxInt), 1.0, 0.0)

	// Then
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got.Quantity)
	assert.Greater(t, got.Subtotal, 0.0)
}

func TestCalculateFinalPrice_RejectsNonNumeric(t *testing.T) {
	tests := []struct {
		name          string
		quantity      any
		unitPrice     any
		taxPercentage any
		field         string
	}{
		{name: "string quantity", quantity: "two", unitPrice: 100, taxPercentage: 10, field: FieldQuantity},
		{name: "string unit price", quantity: 2, unitPrice: "hundred", taxPercentage: 10, field: FieldUnitPrice},
		{name: "string tax", quantity: 2, unitPrice: 100, taxPercentage: "ten", field: FieldTaxPercentage},
		{name: "nil quantity", quantity: nil, unitPrice: 100, taxPercentage: 10, field: FieldQuantity},
		{name: "nil unit price", quantity: 2, unitPrice: nil, taxPercentage: 10, field: FieldUnitPrice},
		{name: "missing tax", quantity: 2, unitPrice: 100, taxPercentage: nil, field: FieldTaxPercentage},
		{name: "float quantity", quantity: 2.5, unitPrice: 100, taxPercentage: 10, field: FieldQuantity},
		{name: "bool tax", quantity: 2, unitPrice: 100, taxPercentage: true, field: FieldTaxPercentage},
		{name: "uint64 quantity above max int", quantity: uint64(1 << 63), unitPrice: 1.0, taxPercentage: 0.0, field: FieldQuantity},
		{name: "uint quantity above max int", quantity: uint(math.MaxInt) + 1, unitPrice: 1.0, taxPercentage: 0.0, field: FieldQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When
			got, err := CalculateFinalPrice(tt.quantity, tt.unitPrice, tt.taxPercentage)

			// Then
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTypeMismatch)

			var mismatch *TypeMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tt.field, mismatch.Field)
			assert.Zero(t, got)
		})
	}
}

func TestTypeMismatchError_Message(t *testing.T) {
	assert.Equal(t, "tax_percentage: missing value",
		(&TypeMismatchError{Field: FieldTaxPercentage}).Error())
	assert.Equal(t, "quantity: unsupported type string (two)",
		(&TypeMismatchError{Field: FieldQuantity, Value: "two"}).Error())
}
