package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentAgreementTerms describes the commercial terms of a rental agreement
type RentAgreementTerms struct {
	MonthlyRent        decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	SecurityDeposit    decimal.Decimal `yaml:"security_deposit" json:"security_deposit"`
	MaintenanceCharges decimal.Decimal `yaml:"maintenance_charges" json:"maintenance_charges"`
	DurationMonths     int             `yaml:"duration_months" json:"duration_months"`
	StartDate          time.Time       `yaml:"start_date" json:"start_date"`
	StateCode          string          `yaml:"state_code" json:"state_code"`
}

// RentAgreementCalculations is the derived money and date summary for an
// agreement. StampDutyEstimate is floored at ₹100 and rounded up to the
// nearest ten.
type RentAgreementCalculations struct {
	TotalSecurityDeposit decimal.Decimal `json:"total_security_deposit"`
	FirstMonthTotal      decimal.Decimal `json:"first_month_total"`
	AgreementEndDate     time.Time       `json:"agreement_end_date"`
	StampDutyEstimate    decimal.Decimal `json:"stamp_duty_estimate"`
	RegistrationFee      decimal.Decimal `json:"registration_fee"`
}
