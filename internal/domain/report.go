package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegimeComparisonInput carries an income profile for an old-vs-new
// regime comparison.
type RegimeComparisonInput struct {
	GrossIncome decimal.Decimal `yaml:"gross_income" json:"gross_income"`
	AgeGroup    AgeGroup        `yaml:"age_group" json:"age_group"`
	Deductions  Deductions      `yaml:"deductions" json:"deductions"`
}

// CalculationRequest is a parsed request file. Every section is optional;
// the engine runs whichever calculators have input.
type CalculationRequest struct {
	RegimeComparison *RegimeComparisonInput `yaml:"regime_comparison,omitempty" json:"regime_comparison,omitempty"`
	GSTPenalty       *GSTPenaltyInput       `yaml:"gst_penalty,omitempty" json:"gst_penalty,omitempty"`
	TDSPenalty       *TDSPenaltyInput       `yaml:"tds_penalty,omitempty" json:"tds_penalty,omitempty"`
	RentAgreement    *RentAgreementTerms    `yaml:"rent_agreement,omitempty" json:"rent_agreement,omitempty"`
	Invoice          *InvoiceInput          `yaml:"invoice,omitempty" json:"invoice,omitempty"`
}

// CalculationReport aggregates the results for every section present in the
// originating request. Nil sections were not requested.
type CalculationReport struct {
	GeneratedAt      time.Time                  `json:"generated_at"`
	RegimeComparison *RegimeComparisonResult    `json:"regime_comparison,omitempty"`
	GSTPenalty       *PenaltyResult             `json:"gst_penalty,omitempty"`
	TDSPenalty       *PenaltyResult             `json:"tds_penalty,omitempty"`
	RentAgreement    *RentAgreementCalculations `json:"rent_agreement,omitempty"`
	Invoice          *InvoiceTotals             `json:"invoice,omitempty"`
}

// IsEmpty reports whether the request names no calculation at all
func (r *CalculationRequest) IsEmpty() bool {
	return r.RegimeComparison == nil && r.GSTPenalty == nil && r.TDSPenalty == nil &&
		r.RentAgreement == nil && r.Invoice == nil
}
