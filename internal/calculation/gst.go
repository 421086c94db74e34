package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
	"github.com/taxdoc/india-tax-calculator/pkg/dateutil"
)

// GST PENALTY ASSUMPTIONS:
//
// 1. Late fee accrues per day between the due date and the filing date,
//    at the return type's statutory rate, capped per return type.
//    NIL returns accrue at the reduced rate.
//
// 2. Interest on tax paid late: 18% per annum, simple interest prorated
//    by day over a 365-day year, on the unpaid tax amount.
//
// 3. Filing before the due date is rejected as invalid input rather than
//    clamped to zero late days.

// gstFeeSchedule holds the per-day rates and cap for one return type
type gstFeeSchedule struct {
	PerDay    decimal.Decimal
	NilPerDay decimal.Decimal
	Cap       decimal.Decimal
}

// GSTPenaltyCalculator computes late-filing fees and late-payment interest
type GSTPenaltyCalculator struct {
	Schedules          map[domain.GSTReturnType]gstFeeSchedule
	AnnualInterestRate decimal.Decimal // percentage
}

// NewGSTPenaltyCalculator creates a calculator with the statutory fee
// schedules per return type.
func NewGSTPenaltyCalculator() *GSTPenaltyCalculator {
	return &GSTPenaltyCalculator{
		Schedules: map[domain.GSTReturnType]gstFeeSchedule{
			domain.GSTR3B: {
				PerDay:    decimal.NewFromInt(50),
				NilPerDay: decimal.NewFromInt(20),
				Cap:       decimal.NewFromInt(5000),
			},
			domain.GSTR1: {
				PerDay:    decimal.NewFromInt(50),
				NilPerDay: decimal.NewFromInt(20),
				Cap:       decimal.NewFromInt(10000),
			},
			domain.GSTR9: {
				PerDay:    decimal.NewFromInt(200),
				NilPerDay: decimal.NewFromInt(200),
				Cap:       decimal.NewFromInt(25000),
			},
		},
		AnnualInterestRate: decimal.NewFromInt(18),
	}
}

// Calculate computes the penalty for a late GST filing
func (gc *GSTPenaltyCalculator) Calculate(input domain.GSTPenaltyInput) (*domain.PenaltyResult, error) {
	if input.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("tax amount cannot be negative: %s", input.TaxAmount)
	}
	if input.DueDate.IsZero() || input.FilingDate.IsZero() {
		return nil, fmt.Errorf("due date and filing date are required")
	}
	schedule, ok := gc.Schedules[input.ReturnType]
	if !ok {
		return nil, fmt.Errorf("unknown GST return type %q", input.ReturnType)
	}

	lateDays := dateutil.DaysBetween(input.DueDate, input.FilingDate)
	if lateDays < 0 {
		return nil, fmt.Errorf("filing date %s is before due date %s",
			input.FilingDate.Format("2006-01-02"), input.DueDate.Format("2006-01-02"))
	}

	perDay := schedule.PerDay
	if input.NilReturn {
		perDay = schedule.NilPerDay
	}
	lateFee := perDay.Mul(decimal.NewFromInt(int64(lateDays)))
	capped := false
	if lateFee.GreaterThan(schedule.Cap) {
		lateFee = schedule.Cap
		capped = true
	}

	interest := decimal.Zero
	interestDays := 0
	if input.TaxPaidLate {
		if input.PaymentDate.IsZero() {
			return nil, fmt.Errorf("payment date is required when tax is paid late")
		}
		interestDays = dateutil.DaysBetween(input.DueDate, input.PaymentDate)
		if interestDays < 0 {
			return nil, fmt.Errorf("payment date %s is before due date %s",
				input.PaymentDate.Format("2006-01-02"), input.DueDate.Format("2006-01-02"))
		}
		interest = input.TaxAmount.
			Mul(gc.AnnualInterestRate).Div(decimal.NewFromInt(100)).
			Mul(decimal.NewFromInt(int64(interestDays))).Div(decimal.NewFromInt(365)).
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
