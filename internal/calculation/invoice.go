package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// InvoiceCalculator computes the GST split for an invoice line. Supply is
// inter-state when the seller's GSTIN state code differs from the buyer's
// (or from the explicit place of supply for unregistered buyers); IGST
// applies then, CGST+SGST otherwise.
type InvoiceCalculator struct{}

// NewInvoiceCalculator creates an invoice totals calculator
func NewInvoiceCalculator() *InvoiceCalculator {
	return &InvoiceCalculator{}
}

// Calculate computes subtotal, the CGST/SGST-vs-IGST split, and the total
func (ic *InvoiceCalculator) Calculate(input domain.InvoiceInput) (*domain.InvoiceTotals, error) {
	if input.Quantity.IsNegative() {
		return nil, fmt.Errorf("quantity cannot be negative: %s", input.Quantity)
	}
	if input.Rate.IsNegative() {
		return nil, fmt.Errorf("rate cannot be negative: %s", input.Rate)
	}
	for _, r := range []decimal.Decimal{input.CGSTRate, input.SGSTRate, input.IGSTRate} {
		if r.IsNegative() {
			return nil, fmt.Errorf("tax rates cannot be negative")
		}
	}

	sellerState, ok := domain.GSTINStateCode(input.SellerGSTIN)
	if !ok {
		return nil, fmt.Errorf("invalid seller GSTIN %q", input.SellerGSTIN)
	}

	var buyerState string
	switch {
	case input.BuyerGSTIN != "":
		buyerState, ok = domain.GSTINStateCode(input.BuyerGSTIN)
		if !ok {
			return nil, fmt.Errorf("invalid buyer GSTIN %q", input.BuyerGSTIN)
		}
	case input.PlaceOfSupply != "":
		state, found := domain.StateByCode(input.PlaceOfSupply)
		if !found {
			return nil, fmt.Errorf("unknown place-of-supply state %q", input.PlaceOfSupply)
		}
		buyerState = state.Code
	default:
		return nil, fmt.Errorf("either buyer GSTIN or place of supply is required")
	}

	subtotal := input.Quantity.Mul(input.Rate)
	isInterState := sellerState != buyerState

	hundred := decimal.NewFromInt(100)
	totals := &domain.InvoiceTotals{
		Subtotal:     subtotal,
		IsInterState: isInterState,
	}
	if isInterState {
		totals.IGSTAmount = subtotal.Mul(input.IGSTRate).Div(hundred)
	} else {
		totals.CGSTAmount = subtotal.Mul(input.CGSTRate).Div(hundred)
		totals.SGSTAmount = subtotal.Mul(input.SGSTRate).Div(hundred)
	}
	totals.Total = subtotal.Add(totals.CGSTAmount).Add(totals.SGSTAmount).Add(totals.IGSTAmount)

	return totals, nil
}
