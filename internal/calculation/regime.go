package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// RegimeComparator computes old-vs-new regime tax for one income profile
type RegimeComparator struct {
	NewRegime *SlabTaxCalculator
}

// NewRegimeComparator creates a comparator over the FY 2024-25 schedules
func NewRegimeComparator() *RegimeComparator {
	return &RegimeComparator{NewRegime: NewNewRegimeCalculator2024()}
}

// CappedDeductions clamps each itemized claim to its statutory limit and
// returns the allowable total. Values above cap are clamped, not rejected.
func CappedDeductions(d domain.Deductions) decimal.Decimal {
	total := decimal.Min(d.Section80C, Cap80C)
	total = total.Add(decimal.Min(d.Section80D, Cap80D))
	total = total.Add(decimal.Min(d.HomeLoanInterest, CapHomeLoan))
	total = total.Add(decimal.Min(d.NPS80CCD1B, CapNPS80CCD1B))
	return total
}

// Compare computes both regimes and recommends the cheaper one.
// Old regime: gross less standard deduction less capped itemized claims,
// against the age-band schedule. New regime: gross less standard deduction
// only, itemized claims disallowed.
func (rc *RegimeComparator) Compare(input domain.RegimeComparisonInput) (*domain.RegimeComparisonResult, error) {
	if input.GrossIncome.IsNegative() {
		return nil, fmt.Errorf("gross income cannot be negative: %s", input.GrossIncome)
	}
	for _, d := range []decimal.Decimal{input.Deductions.Section80C, input.Deductions.Section80D, input.Deductions.HomeLoanInterest, input.Deductions.NPS80CCD1B} {
		if d.IsNegative() {
			return nil, fmt.Errorf("deductions cannot be negative")
		}
	}
	ageGroup := input.AgeGroup
	if ageGroup == "" {
		ageGroup = domain.AgeGroupBelow60
	}

	oldCalc := NewOldRegimeCalculator2024(ageGroup)

	itemized := CappedDeductions(input.Deductions)
	oldDeductions := StandardDeductionOld.Add(itemized)
	oldTaxable := decimal.Max(input.GrossIncome.Sub(oldDeductions), decimal.Zero)
	oldResult := domain.RegimeTaxResult{
		SlabTaxResult: oldCalc.Calculate(oldTaxable),
		GrossIncome:   input.GrossIncome,
		Deductions:    oldDeductions,
	}

	newTaxable := decimal.Max(input.GrossIncome.Sub(StandardDeductionNew), decimal.Zero)
	newResult := domain.RegimeTaxResult{
		SlabTaxResult: rc.NewRegime.Calculate(newTaxable),
		GrossIncome:   input.GrossIncome,
		Deductions:    StandardDeductionNew,
	}

	recommendation := domain.RecommendEqual
	switch {
	case oldResult.TotalTax.LessThan(newResult.TotalTax):
		recommendation = domain.RecommendOld
	case newResult.TotalTax.LessThan(oldResult.TotalTax):
		recommendation = domain.RecommendNew
	}

	savings := oldResult.TotalTax.Sub(newResult.TotalTax).Abs()
	savingsPct := decimal.Zero
	if input.GrossIncome.IsPositive() {
		savingsPct = savings.Div(input.GrossIncome).Mul(decimal.NewFromInt(100))
	}

	return &domain.RegimeComparisonResult{
		OldRegime:         oldResult,
		NewRegime:         newResult,
		Recommendation:    recommendation,
		Savings:           savings,
		SavingsPercentage: savingsPct,
	}, nil
}
