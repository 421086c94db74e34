package domain

import (
	"github.com/shopspring/decimal"
)

// AgeGroup selects the old-regime slab variant for a taxpayer
type AgeGroup string

const (
	AgeGroupBelow60     AgeGroup = "below_60"
	AgeGroupSenior      AgeGroup = "senior"       // 60 to 80
	AgeGroupSuperSenior AgeGroup = "super_senior" // 80 and above
)

// TaxBracket represents one slab of a progressive income-tax schedule.
// The final bracket of a schedule is unbounded (Max holds UnboundedSlab).
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"` // fraction, e.g. 0.05 for 5%
}

// UnboundedSlab marks the upper bound of the last bracket in a schedule
var UnboundedSlab = decimal.NewFromInt(1_000_000_000_000)

// IsUnbounded reports whether this bracket is the open-ended top slab
func (b TaxBracket) IsUnbounded() bool {
	return b.Max.GreaterThanOrEqual(UnboundedSlab)
}

// SlabBreakdown records the tax contributed by a single slab
type SlabBreakdown struct {
	SlabStart decimal.Decimal `json:"slab_start"`
	SlabEnd   decimal.Decimal `json:"slab_end"`
	Rate      decimal.Decimal `json:"rate"`
	TaxInSlab decimal.Decimal `json:"tax_in_slab"`
}

// SlabTaxResult is the full output of a slab-wise tax computation.
// TotalTax always equals TaxAfterRebate + Cess, and the breakdown entries
// sum to TaxBeforeRebate.
type SlabTaxResult struct {
	TaxableIncome   decimal.Decimal `json:"taxable_income"`
	TaxBeforeRebate decimal.Decimal `json:"tax_before_rebate"`
	Rebate          decimal.Decimal `json:"rebate"`
	TaxAfterRebate  decimal.Decimal `json:"tax_after_rebate"`
	Cess            decimal.Decimal `json:"cess"`
	TotalTax        decimal.Decimal `json:"total_tax"`
	EffectiveRate   decimal.Decimal `json:"effective_rate"` // percentage of taxable income
	Breakdown       []SlabBreakdown `json:"breakdown"`
}

// Deductions holds the old-regime itemized deduction claims. Amounts above
// the statutory caps are clamped during computation, never rejected.
type Deductions struct {
	Section80C       decimal.Decimal `yaml:"section_80c" json:"section_80c"`               // investments, cap 1,50,000
	Section80D       decimal.Decimal `yaml:"section_80d" json:"section_80d"`               // health insurance, cap 75,000
	HomeLoanInterest decimal.Decimal `yaml:"home_loan_interest" json:"home_loan_interest"` // Section 24(b), cap 2,00,000
	NPS80CCD1B       decimal.Decimal `yaml:"nps_80ccd1b" json:"nps_80ccd1b"`               // NPS, cap 50,000
}

// RegimeTaxResult augments a slab result with the income figures that fed it
type RegimeTaxResult struct {
	SlabTaxResult
	GrossIncome decimal.Decimal `json:"gross_income"`
	Deductions  decimal.Decimal `json:"deductions"` // total amount subtracted from gross
}

// Recommendation identifies the regime with the lower total tax
type Recommendation string

const (
	RecommendOld   Recommendation = "old"
	RecommendNew   Recommendation = "new"
	RecommendEqual Recommendation = "equal"
)

// RegimeComparisonResult is the output of an old-vs-new regime comparison
type RegimeComparisonResult struct {
	OldRegime         RegimeTaxResult `json:"old_regime"`
	NewRegime         RegimeTaxResult `json:"new_regime"`
	Recommendation    Recommendation  `json:"recommendation"`
	Savings           decimal.Decimal `json:"savings"`
	SavingsPercentage decimal.Decimal `json:"savings_percentage"`
}
