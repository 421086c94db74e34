package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTReturnType identifies the GST return being filed late. Each type
// carries its own per-day late fee and statutory cap.
type GSTReturnType string

const (
	GSTR3B GSTReturnType = "GSTR-3B"
	GSTR1  GSTReturnType = "GSTR-1"
	GSTR9  GSTReturnType = "GSTR-9"
)

// TDSSection identifies the deduction category, mapped to its Income Tax
// Act section for reporting.
type TDSSection string

const (
	TDSSalary       TDSSection = "salary"       // Section 192
	TDSContractor   TDSSection = "contractor"   // Section 194C
	TDSRent         TDSSection = "rent"         // Section 194I
	TDSProfessional TDSSection = "professional" // Section 194J
	TDSCommission   TDSSection = "commission"   // Section 194H
)

// GSTPenaltyInput describes a late GST filing. TaxPaidLate and PaymentDate
// drive the optional interest charge on tax deposited after the due date.
type GSTPenaltyInput struct {
	TaxAmount   decimal.Decimal `yaml:"tax_amount" json:"tax_amount"`
	ReturnType  GSTReturnType   `yaml:"return_type" json:"return_type"`
	NilReturn   bool            `yaml:"nil_return" json:"nil_return"`
	DueDate     time.Time       `yaml:"due_date" json:"due_date"`
	FilingDate  time.Time       `yaml:"filing_date" json:"filing_date"`
	TaxPaidLate bool            `yaml:"tax_paid_late" json:"tax_paid_late"`
	PaymentDate time.Time       `yaml:"payment_date,omitempty" json:"payment_date,omitempty"`
}

// TDSPenaltyInput describes a late TDS return and, optionally, a late
// deposit of the deducted tax.
type TDSPenaltyInput struct {
	TDSAmount   decimal.Decimal `yaml:"tds_amount" json:"tds_amount"`
	Section     TDSSection      `yaml:"section" json:"section"`
	DueDate     time.Time       `yaml:"due_date" json:"due_date"`
	FilingDate  time.Time       `yaml:"filing_date" json:"filing_date"`
	LateDeposit bool            `yaml:"late_deposit" json:"late_deposit"`
	DepositDate time.Time       `yaml:"deposit_date,omitempty" json:"deposit_date,omitempty"`
}

// PenaltyResult is the outcome of a statutory penalty computation.
// LateFee never exceeds the category cap, and TotalPenalty is always
// LateFee + InterestAmount.
type PenaltyResult struct {
	LateDays       int             `json:"late_days"`
	LateFee        decimal.Decimal `json:"late_fee"`
	FeeCapped      bool            `json:"fee_capped"`
	InterestDays   int             `json:"interest_days"`
	InterestAmount decimal.Decimal `json:"interest_amount"`
	TotalPenalty   decimal.Decimal `json:"total_penalty"`
}
