package calculation

import (
	"fmt"
	"time"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// CalculationEngine orchestrates the document calculators. The calculators
// themselves are pure; the engine owns logging and request dispatch.
type CalculationEngine struct {
	RegimeCalc  *RegimeComparator
	GSTCalc     *GSTPenaltyCalculator
	TDSCalc     *TDSPenaltyCalculator
	StampCalc   *StampDutyEstimator
	InvoiceCalc *InvoiceCalculator
	Logger      Logger
}

// NewCalculationEngine creates an engine over the statutory FY 2024-25 rules
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		RegimeCalc:  NewRegimeComparator(),
		GSTCalc:     NewGSTPenaltyCalculator(),
		TDSCalc:     NewTDSPenaltyCalculator(),
		StampCalc:   NewStampDutyEstimator(),
		InvoiceCalc: NewInvoiceCalculator(),
		Logger:      NopLogger{},
	}
}

// Run executes every calculator the request has input for and aggregates
// the results into a report. The first calculator error aborts the run.
func (ce *CalculationEngine) Run(request *domain.CalculationRequest) (*domain.CalculationReport, error) {
	if request == nil || request.IsEmpty() {
		return nil, fmt.Errorf("request names no calculations")
	}

	report := &domain.CalculationReport{GeneratedAt: time.Now().UTC()}

	if request.RegimeComparison != nil {
		ce.Logger.Debugf("comparing regimes for gross income %s", request.RegimeComparison.GrossIncome)
		result, err := ce.RegimeCalc.Compare(*request.RegimeComparison)
		if err != nil {
			return nil, fmt.Errorf("regime comparison: %w", err)
		}
		report.RegimeComparison = result
	}

	if request.GSTPenalty != nil {
		ce.Logger.Debugf("calculating GST penalty for %s return", request.GSTPenalty.ReturnType)
		result, err := ce.GSTCalc.Calculate(*request.GSTPenalty)
		if err != nil {
			return nil, fmt.Errorf("gst penalty: %w", err)
		}
		report.GSTPenalty = result
	}

	if request.TDSPenalty != nil {
		ce.Logger.Debugf("calculating TDS penalty for section %s", request.TDSPenalty.Section)
		result, err := ce.TDSCalc.Calculate(*request.TDSPenalty)
		if err != nil {
			return nil, fmt.Errorf("tds penalty: %w", err)
		}
		report.TDSPenalty = result
	}

	if request.RentAgreement != nil {
		ce.Logger.Debugf("calculating rent agreement for state %s", request.RentAgreement.StateCode)
		result, err := ce.StampCalc.Calculate(*request.RentAgreement)
		if err != nil {
			return nil, fmt.Errorf("rent agreement: %w", err)
		}
		report.RentAgreement = result
	}

	if request.Invoice != nil {
		ce.Logger.Debugf("calculating invoice totals for seller %s", request.Invoice.SellerGSTIN)
		result, err := ce.InvoiceCalc.Calculate(*request.Invoice)
		if err != nil {
			return nil, fmt.Errorf("invoice totals: %w", err)
		}
		report.Invoice = result
	}

	return report, nil
}
