package domain

import (
	"github.com/shopspring/decimal"
)

// InvoiceInput carries the billing fields the GST totals computation needs.
// PlaceOfSupply stands in for the buyer's state when the buyer is
// unregistered and has no GSTIN.
type InvoiceInput struct {
	Quantity      decimal.Decimal `yaml:"quantity" json:"quantity"`
	Rate          decimal.Decimal `yaml:"rate" json:"rate"`
	SellerGSTIN   string          `yaml:"seller_gstin" json:"seller_gstin"`
	BuyerGSTIN    string          `yaml:"buyer_gstin,omitempty" json:"buyer_gstin,omitempty"`
	PlaceOfSupply string          `yaml:"place_of_supply,omitempty" json:"place_of_supply,omitempty"`
	CGSTRate      decimal.Decimal `yaml:"cgst_rate" json:"cgst_rate"` // percentage
	SGSTRate      decimal.Decimal `yaml:"sgst_rate" json:"sgst_rate"`
	IGSTRate      decimal.Decimal `yaml:"igst_rate" json:"igst_rate"`
}

// InvoiceTotals is the computed tax split for an invoice line. Exactly one
// of {CGST+SGST, IGST} is nonzero whenever any rate is nonzero.
type InvoiceTotals struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	CGSTAmount   decimal.Decimal `json:"cgst_amount"`
	SGSTAmount   decimal.Decimal `json:"sgst_amount"`
	IGSTAmount   decimal.Decimal `json:"igst_amount"`
	Total        decimal.Decimal `json:"total"`
	IsInterState bool            `json:"is_inter_state"`
}
