package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// SLAB TAX ASSUMPTIONS:
//
// 1. Schedules use FY 2024-25 slab boundaries for all calculations
//    - Old regime: three age-band variants (below 60, senior, super senior)
//    - New regime: single schedule regardless of age
//
// 2. Section 87A rebate: full waiver up to the cap when taxable income is
//    at or below the regime's threshold (old ₹5,00,000 / new ₹7,00,000)
//
// 3. Health & education cess: 4% on tax after rebate, rounded to the rupee

// SlabTaxCalculator computes progressive tax against a validated schedule
type SlabTaxCalculator struct {
	Schedule        []domain.TaxBracket
	RebateThreshold decimal.Decimal
	RebateCap       decimal.Decimal
	CessPercent     decimal.Decimal
}

// NewSlabSchedule validates a bracket table: brackets must be ordered
// ascending, contiguous from zero, non-overlapping, and end with an
// unbounded top slab. Malformed tables are configuration bugs, so this
// runs once at construction, never per call.
func NewSlabSchedule(brackets []domain.TaxBracket) ([]domain.TaxBracket, error) {
	if len(brackets) == 0 {
		return nil, fmt.Errorf("slab schedule must have at least one bracket")
	}
	if !brackets[0].Min.IsZero() {
		return nil, fmt.Errorf("first bracket must start at zero, got %s", brackets[0].Min)
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return nil, fmt.Errorf("bracket %d: negative rate %s", i, b.Rate)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return nil, fmt.Errorf("bracket %d: upper bound %s not above lower bound %s", i, b.Max, b.Min)
		}
		if i > 0 && !b.Min.Equal(brackets[i-1].Max) {
			return nil, fmt.Errorf("bracket %d: gap or overlap at %s (previous ends %s)", i, b.Min, brackets[i-1].Max)
		}
	}
	if !brackets[len(brackets)-1].IsUnbounded() {
		return nil, fmt.Errorf("final bracket must be unbounded")
	}
	return brackets, nil
}

// NewSlabTaxCalculator builds a calculator over a validated schedule
func NewSlabTaxCalculator(brackets []domain.TaxBracket, rebateThreshold, rebateCap, cessPercent decimal.Decimal) (*SlabTaxCalculator, error) {
	schedule, err := NewSlabSchedule(brackets)
	if err != nil {
		return nil, err
	}
	return &SlabTaxCalculator{
		Schedule:        schedule,
		RebateThreshold: rebateThreshold,
		RebateCap:       rebateCap,
		CessPercent:     cessPercent,
	}, nil
}

// Calculate walks the schedule and produces the full slab-wise result.
// Taxable income of zero yields an empty breakdown and a zero result;
// negative income is clamped to zero.
func (sc *SlabTaxCalculator) Calculate(taxableIncome decimal.Decimal) domain.SlabTaxResult {
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	var taxBeforeRebate decimal.Decimal
	var breakdown []domain.SlabBreakdown

	for _, bracket := range sc.Schedule {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		incomeInSlab := decimal.Min(taxableIncome, bracket.Max).Sub(bracket.Min)
		if incomeInSlab.LessThanOrEqual(decimal.Zero) {
			continue
		}
		taxInSlab := incomeInSlab.Mul(bracket.Rate)
		taxBeforeRebate = taxBeforeRebate.Add(taxInSlab)
		breakdown = append(breakdown, domain.SlabBreakdown{
			SlabStart: bracket.Min,
			SlabEnd:   decimal.Min(taxableIncome, bracket.Max),
			Rate:      bracket.Rate,
			TaxInSlab: taxInSlab,
		})
	}

	rebate := decimal.Zero
	if taxableIncome.LessThanOrEqual(sc.RebateThreshold) {
		rebate = decimal.Min(taxBeforeRebate, sc.RebateCap)
	}
	taxAfterRebate := taxBeforeRebate.Sub(rebate)

	cess := taxAfterRebate.Mul(sc.CessPercent).Div(decimal.NewFromInt(100)).Round(0)
	totalTax := taxAfterRebate.Add(cess)

	effectiveRate := decimal.Zero
	if taxableIncome.IsPositive() {
		effectiveRate = totalTax.Div(taxableIncome).Mul(decimal.NewFromInt(100))
	}

	return domain.SlabTaxResult{
		TaxableIncome:   taxableIncome,
		TaxBeforeRebate: taxBeforeRebate,
		Rebate:          rebate,
		TaxAfterRebate:  taxAfterRebate,
		Cess:            cess,
		TotalTax:        totalTax,
		EffectiveRate:   effectiveRate,
		Breakdown:       breakdown,
	}
}
