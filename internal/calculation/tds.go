package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
	"github.com/taxdoc/india-tax-calculator/pkg/dateutil"
)

// TDS PENALTY ASSUMPTIONS:
//
// 1. Section 234E late fee: ₹200 per day between the due date and the
//    filing date, capped at the TDS amount itself.
//
// 2. Interest on late deposit: 1.5% per month on the TDS amount, prorated
//    by day over a 30-day month (Section 201(1A) style).
//
// 3. Filing before the due date, or a late-deposit flag without a valid
//    deposit date on or after the due date, is rejected as invalid input.

// TDSSectionCode maps a deduction category to its Income Tax Act section
var TDSSectionCode = map[domain.TDSSection]string{
	domain.TDSSalary:       "192",
	domain.TDSContractor:   "194C",
	domain.TDSRent:         "194I",
	domain.TDSProfessional: "194J",
	domain.TDSCommission:   "194H",
}

// TDSPenaltyCalculator computes Section 234E fees and late-deposit interest
type TDSPenaltyCalculator struct {
	FeePerDay           decimal.Decimal
	MonthlyInterestRate decimal.Decimal // percentage per month
}

// NewTDSPenaltyCalculator creates a calculator with the statutory rates
func NewTDSPenaltyCalculator() *TDSPenaltyCalculator {
	return &TDSPenaltyCalculator{
		FeePerDay:           decimal.NewFromInt(200),
		MonthlyInterestRate: decimal.NewFromFloat(1.5),
	}
}

// Calculate computes the penalty for a late TDS return
func (tc *TDSPenaltyCalculator) Calculate(input domain.TDSPenaltyInput) (*domain.PenaltyResult, error) {
	if input.TDSAmount.IsNegative() {
		return nil, fmt.Errorf("TDS amount cannot be negative: %s", input.TDSAmount)
	}
	if _, ok := TDSSectionCode[input.Section]; !ok {
		return nil, fmt.Errorf("unknown TDS section %q", input.Section)
	}
	if input.DueDate.IsZero() || input.FilingDate.IsZero() {
		return nil, fmt.Errorf("due date and filing date are required")
	}

	lateDays := dateutil.DaysBetween(input.DueDate, input.FilingDate)
	if lateDays < 0 {
		return nil, fmt.Errorf("filing date %s is before due date %s",
			input.FilingDate.Format("2006-01-02"), input.DueDate.Format("2006-01-02"))
	}

	lateFee := tc.FeePerDay.Mul(decimal.NewFromInt(int64(lateDays)))
	capped := false
	if lateFee.GreaterThan(input.TDSAmount) {
		lateFee = input.TDSAmount
		capped = true
	}

	interest := decimal.Zero
	interestDays := 0
	if input.LateDeposit {
		if input.DepositDate.IsZero() {
			return nil, fmt.Errorf("deposit date is required when late deposit is flagged")
		}
		interestDays = dateutil.DaysBetween(input.DueDate, input.DepositDate)
		if interestDays < 0 {
			return nil, fmt.Errorf("deposit date %s is before due date %s",
				input.DepositDate.Format("2006-01-02"), input.DueDate.Format("2006-01-02"))
		}
		interest = input.TDSAmount.
			Mul(tc.MonthlyInterestRate).Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromInt(int64(interestDays))).Div(decimal.NewFromInt(30)).
			Round(2)
	}

	return &domain.PenaltyResult{
		LateDays:       lateDays,
		LateFee:        lateFee,
		FeeCapped:      capped,
		InterestDays:   interestDays,
		InterestAmount: interest,
		TotalPenalty:   lateFee.Add(interest),
	}, nil
}
