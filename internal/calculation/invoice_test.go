package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

const (
	karnatakaGSTIN   = "29ABCDE1234F1Z5"
	maharashtraGSTIN = "27PQRST5678K2Z3"
)

// TestInvoiceTotalsIntraState tests the CGST/SGST split for same-state supply
func TestInvoiceTotalsIntraState(t *testing.T) {
	calculator := NewInvoiceCalculator()

	result, err := calculator.Calculate(domain.InvoiceInput{
		Quantity:    decimal.NewFromInt(10),
		Rate:        decimal.NewFromInt(15000),
		SellerGSTIN: karnatakaGSTIN,
		BuyerGSTIN:  "29LMNOP9876Q1Z8",
		CGSTRate:    decimal.NewFromInt(9),
		SGSTRate:    decimal.NewFromInt(9),
		IGSTRate:    decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	assert.False(t, result.IsInterState)
	assert.True(t, result.Subtotal.Equal(decimal.NewFromInt(150000)))
	assert.True(t, result.CGSTAmount.Equal(decimal.NewFromInt(13500)), "got %s", result.CGSTAmount)
	assert.True(t, result.SGSTAmount.Equal(decimal.NewFromInt(13500)), "got %s", result.SGSTAmount)
	assert.True(t, result.IGSTAmount.IsZero())
	assert.True(t, result.Total.Equal(decimal.NewFromInt(177000)))
}

// TestInvoiceTotalsInterState tests the IGST path for cross-state supply
func TestInvoiceTotalsInterState(t *testing.T) {
	calculator := NewInvoiceCalculator()

	result, err := calculator.Calculate(domain.InvoiceInput{
		Quantity:    decimal.NewFromInt(10),
		Rate:        decimal.NewFromInt(15000),
		SellerGSTIN: karnatakaGSTIN,
		BuyerGSTIN:  maharashtraGSTIN,
		CGSTRate:    decimal.NewFromInt(9),
		SGSTRate:    decimal.NewFromInt(9),
		IGSTRate:    decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	assert.True(t, result.IsInterState)
	assert.True(t, result.CGSTAmount.IsZero())
	assert.True(t, result.SGSTAmount.IsZero())
	assert.True(t, result.IGSTAmount.Equal(decimal.NewFromInt(27000)), "got %s", result.IGSTAmount)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(177000)))
}

// TestInvoicePlaceOfSupply tests unregistered buyers via place of supply
func TestInvoicePlaceOfSupply(t *testing.T) {
	calculator := NewInvoiceCalculator()

	tests := []struct {
		name          string
		placeOfSupply string
		interState    bool
	}{
		{"Same state by abbreviation", "KA", false},
		{"Same state by GST code", "29", false},
		{"Other state", "MH", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := calculator.Calculate(domain.InvoiceInput{
				Quantity:      decimal.NewFromInt(1),
				Rate:          decimal.NewFromInt(1000),
				SellerGSTIN:   karnatakaGSTIN,
				PlaceOfSupply: tt.placeOfSupply,
				CGSTRate:      decimal.NewFromInt(9),
				SGSTRate:      decimal.NewFromInt(9),
				IGSTRate:      decimal.NewFromInt(18),
			})
			require.NoError(t, err)
			assert.Equal(t, tt.interState, result.IsInterState)
		})
	}
}

// TestInvoiceTaxSplitExclusive verifies exactly one split is ever nonzero
func TestInvoiceTaxSplitExclusive(t *testing.T) {
	calculator := NewInvoiceCalculator()

	for _, buyer := range []string{"29LMNOP9876Q1Z8", maharashtraGSTIN, "07QWERT1234A1Z9"} {
		result, err := calculator.Calculate(domain.InvoiceInput{
			Quantity:    decimal.NewFromInt(3),
			Rate:        decimal.NewFromFloat(999.50),
			SellerGSTIN: karnatakaGSTIN,
			BuyerGSTIN:  buyer,
			CGSTRate:    decimal.NewFromInt(9),
			SGSTRate:    decimal.NewFromInt(9),
			IGSTRate:    decimal.NewFromInt(18),
		})
		require.NoError(t, err)

		intraPart := result.CGSTAmount.Add(result.SGSTAmount)
		if result.IsInterState {
			assert.True(t, intraPart.IsZero(), "CGST/SGST leaked on inter-state supply to %s", buyer)
			assert.True(t, result.IGSTAmount.IsPositive())
		} else {
			assert.True(t, result.IGSTAmount.IsZero(), "IGST leaked on intra-state supply to %s", buyer)
			assert.True(t, intraPart.IsPositive())
		}
	}
}

// TestInvoiceInvalidInput tests GSTIN validation and required fields
func TestInvoiceInvalidInput(t *testing.T) {
	calculator := NewInvoiceCalculator()

	tests := []struct {
		name    string
		input   domain.InvoiceInput
		wantErr string
	}{
		{
			name: "Malformed seller GSTIN",
			input: domain.InvoiceInput{
				Quantity:    decimal.NewFromInt(1),
				Rate:        decimal.NewFromInt(100),
				SellerGSTIN: "29ABC",
				BuyerGSTIN:  maharashtraGSTIN,
			},
			wantErr: "invalid seller GSTIN",
		},
		{
			name: "Malformed buyer GSTIN",
			input: domain.InvoiceInput{
				Quantity:    decimal.NewFromInt(1),
				Rate:        decimal.NewFromInt(100),
				SellerGSTIN: karnatakaGSTIN,
				BuyerGSTIN:  "not-a-gstin",
			},
			wantErr: "invalid buyer GSTIN",
		},
		{
			name: "No buyer identity at all",
			input: domain.InvoiceInput{
				Quantity:    decimal.NewFromInt(1),
				Rate:        decimal.NewFromInt(100),
				SellerGSTIN: karnatakaGSTIN,
			},
			wantErr: "place of supply is required",
		},
		{
			name: "Unknown place of supply",
			input: domain.InvoiceInput{
				Quantity:      decimal.NewFromInt(1),
				Rate:          decimal.NewFromInt(100),
				SellerGSTIN:   karnatakaGSTIN,
				PlaceOfSupply: "XX",
			},
			wantErr: "unknown place-of-supply",
		},
		{
			name: "Negative quantity",
			input: domain.InvoiceInput{
				Quantity:    decimal.NewFromInt(-5),
				Rate:        decimal.NewFromInt(100),
				SellerGSTIN: karnatakaGSTIN,
				BuyerGSTIN:  maharashtraGSTIN,
			},
			wantErr: "negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calculator.Calculate(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
