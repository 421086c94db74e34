package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// FY 2024-25 slab boundaries and statutory constants. These must match the
// published tables exactly: regime comparison output depends on them
// bit-for-bit.

var (
	// Standard deduction from salary income
	StandardDeductionOld = decimal.NewFromInt(50000)
	StandardDeductionNew = decimal.NewFromInt(75000)

	// Section 87A rebate
	RebateThresholdOld = decimal.NewFromInt(500000)
	RebateCapOld       = decimal.NewFromInt(12500)
	RebateThresholdNew = decimal.NewFromInt(700000)
	RebateCapNew       = decimal.NewFromInt(25000)

	// Health & education cess on tax after rebate
	CessPercent = decimal.NewFromInt(4)

	// Old-regime itemized deduction caps
	Cap80C        = decimal.NewFromInt(150000)
	Cap80D        = decimal.NewFromInt(75000)
	CapHomeLoan   = decimal.NewFromInt(200000)
	CapNPS80CCD1B = decimal.NewFromInt(50000)
)

func bracket(min, max int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  decimal.NewFromInt(max),
		Rate: decimal.NewFromFloat(rate),
	}
}

func topBracket(min int64, rate float64) domain.TaxBracket {
	return domain.TaxBracket{
		Min:  decimal.NewFromInt(min),
		Max:  domain.UnboundedSlab,
		Rate: decimal.NewFromFloat(rate),
	}
}

// oldRegimeBrackets returns the old-regime schedule for an age band. The
// three bands differ only in the zero-rate threshold.
func oldRegimeBrackets(ageGroup domain.AgeGroup) []domain.TaxBracket {
	switch ageGroup {
	case domain.AgeGroupSuperSenior:
		return []domain.TaxBracket{
			bracket(0, 500000, 0),
			bracket(500000, 1000000, 0.20),
			topBracket(1000000, 0.30),
		}
	case domain.AgeGroupSenior:
		return []domain.TaxBracket{
			bracket(0, 300000, 0),
			bracket(300000, 500000, 0.05),
			bracket(500000, 1000000, 0.20),
			topBracket(1000000, 0.30),
		}
	default:
		return []domain.TaxBracket{
			bracket(0, 250000, 0),
			bracket(250000, 500000, 0.05),
			bracket(500000, 1000000, 0.20),
			topBracket(1000000, 0.30),
		}
	}
}

// newRegimeBrackets returns the new-regime schedule, identical for all ages
func newRegimeBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{
		bracket(0, 300000, 0),
		bracket(300000, 700000, 0.05),
		bracket(700000, 1000000, 0.10),
		bracket(1000000, 1200000, 0.15),
		bracket(1200000, 1500000, 0.20),
		topBracket(1500000, 0.30),
	}
}

// NewOldRegimeCalculator2024 creates a slab calculator for the FY 2024-25
// old regime in the given age band.
func NewOldRegimeCalculator2024(ageGroup domain.AgeGroup) *SlabTaxCalculator {
	calc, err := NewSlabTaxCalculator(oldRegimeBrackets(ageGroup), RebateThresholdOld, RebateCapOld, CessPercent)
	if err != nil {
		// The built-in tables are fixed at compile time; failing to
		// validate them is a programmer error.
		panic(err)
	}
	return calc
}

// NewNewRegimeCalculator2024 creates a slab calculator for the FY 2024-25
// new regime.
func NewNewRegimeCalculator2024() *SlabTaxCalculator {
	calc, err := NewSlabTaxCalculator(newRegimeBrackets(), RebateThresholdNew, RebateCapNew, CessPercent)
	if err != nil {
		panic(err)
	}
	return calc
}
