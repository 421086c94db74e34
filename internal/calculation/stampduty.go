package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
	"github.com/taxdoc/india-tax-calculator/pkg/dateutil"
	money "github.com/taxdoc/india-tax-calculator/pkg/decimal"
)

// StampDutyEstimator derives the money and date summary for a rental
// agreement: state-dependent stamp duty on the total rent for the term,
// a flat registration fee, and the agreement end date.
type StampDutyEstimator struct {
	MinimumDuty     decimal.Decimal
	RegistrationFee decimal.Decimal
}

// NewStampDutyEstimator creates an estimator with the standard ₹100 duty
// floor and ₹1,000 registration fee.
func NewStampDutyEstimator() *StampDutyEstimator {
	return &StampDutyEstimator{
		MinimumDuty:     decimal.NewFromInt(100),
		RegistrationFee: decimal.NewFromInt(1000),
	}
}

// EstimateStampDuty computes percentage-of-total-rent stamp duty for a
// state, floored at the minimum and rounded up to the nearest ten rupees.
// Unknown state codes fall back to the default percentage.
func (se *StampDutyEstimator) EstimateStampDuty(monthlyRent decimal.Decimal, durationMonths int, stateCode string) (decimal.Decimal, error) {
	if monthlyRent.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("monthly rent must be positive: %s", monthlyRent)
	}
	if durationMonths <= 0 {
		return decimal.Zero, fmt.Errorf("duration must be positive: %d months", durationMonths)
	}

	totalRent := money.NewMoneyFromDecimal(monthlyRent.Mul(decimal.NewFromInt(int64(durationMonths))))
	duty := totalRent.Percent(domain.StampDutyPercentFor(stateCode))
	duty = money.Max(duty, money.NewMoneyFromDecimal(se.MinimumDuty))
	return duty.RoundUpToTen().Decimal, nil
}

// ComputeAgreementEndDate returns the last day of the rental term
func (se *StampDutyEstimator) ComputeAgreementEndDate(startDate time.Time, durationMonths int) (time.Time, error) {
	if startDate.IsZero() {
		return time.Time{}, fmt.Errorf("start date is required")
	}
	if durationMonths <= 0 {
		return time.Time{}, fmt.Errorf("duration must be positive: %d months", durationMonths)
	}
	return dateutil.AgreementEndDate(startDate, durationMonths), nil
}

// Calculate produces the full derived summary for an agreement
func (se *StampDutyEstimator) Calculate(terms domain.RentAgreementTerms) (*domain.RentAgreementCalculations, error) {
	if terms.SecurityDeposit.IsNegative() {
		return nil, fmt.Errorf("security deposit cannot be negative: %s", terms.SecurityDeposit)
	}
	if terms.MaintenanceCharges.IsNegative() {
		return nil, fmt.Errorf("maintenance charges cannot be negative: %s", terms.MaintenanceCharges)
	}

	duty, err := se.EstimateStampDuty(terms.MonthlyRent, terms.DurationMonths, terms.StateCode)
	if err != nil {
		return nil, err
	}
	endDate, err := se.ComputeAgreementEndDate(terms.StartDate, terms.DurationMonths)
	if err != nil {
		return nil, err
	}

	return &domain.RentAgreementCalculations{
		TotalSecurityDeposit: terms.SecurityDeposit,
		FirstMonthTotal:      terms.MonthlyRent.Add(terms.MaintenanceCharges),
		AgreementEndDate:     endDate,
		StampDutyEstimate:    duty,
		RegistrationFee:      se.RegistrationFee,
	}, nil
}
