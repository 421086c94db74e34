package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// InputParser handles parsing of calculation request files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var request domain.CalculationRequest
	if err := yaml.Unmarshal(data, &request); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateRequest(&request); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &request, nil
}

// ValidateRequest checks the shape of a loaded request. Calculators re-check
// their own inputs; this catches structural mistakes early with messages that
// point at the offending section of the file.
func (ip *InputParser) ValidateRequest(request *domain.CalculationRequest) error {
	if request.IsEmpty() {
		return fmt.Errorf("no calculation sections provided")
	}

	if rc := request.RegimeComparison; rc != nil {
		if rc.GrossIncome.IsNegative() {
			return fmt.Errorf("regime_comparison: gross income cannot be negative")
		}
		switch rc.AgeGroup {
		case "", domain.AgeGroupBelow60, domain.AgeGroupSenior, domain.AgeGroupSuperSenior:
		default:
			return fmt.Errorf("regime_comparison: age group must be 'below_60', 'senior', or 'super_senior'")
		}
	}

	if gp := request.GSTPenalty; gp != nil {
		if gp.ReturnType == "" {
			return fmt.Errorf("gst_penalty: return type is required")
		}
		if gp.DueDate.IsZero() {
			return fmt.Errorf("gst_penalty: due date is required")
		}
		if gp.FilingDate.IsZero() {
			return fmt.Errorf("gst_penalty: filing date is required")
		}
		if gp.TaxPaidLate && gp.PaymentDate.IsZero() {
			return fmt.Errorf("gst_penalty: payment date is required when tax_paid_late is set")
		}
	}

	if tp := request.TDSPenalty; tp != nil {
		if tp.Section == "" {
			return fmt.Errorf("tds_penalty: section is required")
		}
		if tp.DueDate.IsZero() {
			return fmt.Errorf("tds_penalty: due date is required")
		}
		if tp.FilingDate.IsZero() {
			return fmt.Errorf("tds_penalty: filing date is required")
		}
		if tp.LateDeposit && tp.DepositDate.IsZero() {
			return fmt.Errorf("tds_penalty: deposit date is required when late_deposit is set")
		}
	}

	if ra := request.RentAgreement; ra != nil {
		if ra.MonthlyRent.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("rent_agreement: monthly rent must be positive")
		}
		if ra.DurationMonths <= 0 {
			return fmt.Errorf("rent_agreement: duration must be at least one month")
		}
		if ra.StartDate.IsZero() {
			return fmt.Errorf("rent_agreement: start date is required")
		}
		if ra.StateCode == "" {
			return fmt.Errorf("rent_agreement: state code is required")
		}
	}

	if inv := request.Invoice; inv != nil {
		if inv.SellerGSTIN == "" {
			return fmt.Errorf("invoice: seller GSTIN is required")
		}
		if !domain.ValidGSTIN(inv.SellerGSTIN) {
			return fmt.Errorf("invoice: seller GSTIN %q is malformed", inv.SellerGSTIN)
		}
		if inv.BuyerGSTIN == "" && inv.PlaceOfSupply == "" {
			return fmt.Errorf("invoice: either buyer GSTIN or place of supply is required")
		}
		if inv.BuyerGSTIN != "" && !domain.ValidGSTIN(inv.BuyerGSTIN) {
			return fmt.Errorf("invoice: buyer GSTIN %q is malformed", inv.BuyerGSTIN)
		}
		if inv.Quantity.IsNegative() || inv.Rate.IsNegative() {
			return fmt.Errorf("invoice: quantity and rate cannot be negative")
		}
	}

	return nil
}

// CreateExampleRequest builds a request that exercises most sections, used by
// the CLI to emit a starter file.
func (ip *InputParser) CreateExampleRequest() *domain.CalculationRequest {
	return &domain.CalculationRequest{
		RegimeComparison: &domain.RegimeComparisonInput{
			GrossIncome: decimal.NewFromInt(1200000),
			AgeGroup:    domain.AgeGroupBelow60,
			Deductions: domain.Deductions{
				Section80C:       decimal.NewFromInt(150000),
				Section80D:       decimal.NewFromInt(25000),
				HomeLoanInterest: decimal.NewFromInt(180000),
				NPS80CCD1B:       decimal.NewFromInt(50000),
			},
		},
		GSTPenalty: &domain.GSTPenaltyInput{
			TaxAmount:  decimal.NewFromInt(50000),
			ReturnType: domain.GSTR3B,
			DueDate:    time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC),
			FilingDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		RentAgreement: &domain.RentAgreementTerms{
			MonthlyRent:        decimal.NewFromInt(25000),
			SecurityDeposit:    decimal.NewFromInt(100000),
			MaintenanceCharges: decimal.NewFromInt(2000),
			DurationMonths:     11,
			StartDate:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			StateCode:          "KA",
		},
		Invoice: &domain.InvoiceInput{
			Quantity:    decimal.NewFromInt(10),
			Rate:        decimal.NewFromInt(15000),
			SellerGSTIN: "29ABCDE1234F1Z5",
			BuyerGSTIN:  "27PQRST5678K2Z3",
			CGSTRate:    decimal.NewFromInt(9),
			SGSTRate:    decimal.NewFromInt(9),
			IGSTRate:    decimal.NewFromInt(18),
		},
	}
}
