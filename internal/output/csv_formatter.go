package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// CSVFormatter emits one row per computed figure: section, metric, value.
// A tall layout keeps the schema stable no matter which sections a request
// includes.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.CalculationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Section", "Metric", "Value"}); err != nil {
		return nil, err
	}

	var rows [][]string
	if rc := report.RegimeComparison; rc != nil {
		rows = append(rows,
			[]string{"regime_comparison", "old_total_tax", rc.OldRegime.TotalTax.StringFixed(2)},
			[]string{"regime_comparison", "new_total_tax", rc.NewRegime.TotalTax.StringFixed(2)},
			[]string{"regime_comparison", "old_taxable_income", rc.OldRegime.TaxableIncome.StringFixed(2)},
			[]string{"regime_comparison", "new_taxable_income", rc.NewRegime.TaxableIncome.StringFixed(2)},
			[]string{"regime_comparison", "recommendation", string(rc.Recommendation)},
			[]string{"regime_comparison", "savings", rc.Savings.StringFixed(2)},
		)
	}
	if gp := report.GSTPenalty; gp != nil {
		rows = append(rows, penaltyRows("gst_penalty", gp)...)
	}
	if tp := report.TDSPenalty; tp != nil {
		rows = append(rows, penaltyRows("tds_penalty", tp)...)
	}
	if ra := report.RentAgreement; ra != nil {
		rows = append(rows,
			[]string{"rent_agreement", "total_security_deposit", ra.TotalSecurityDeposit.StringFixed(2)},
			[]string{"rent_agreement", "first_month_total", ra.FirstMonthTotal.StringFixed(2)},
			[]string{"rent_agreement", "agreement_end_date", ra.AgreementEndDate.Format("2006-01-02")},
			[]string{"rent_agreement", "stamp_duty_estimate", ra.StampDutyEstimate.StringFixed(2)},
			[]string{"rent_agreement", "registration_fee", ra.RegistrationFee.StringFixed(2)},
		)
	}
	if inv := report.Invoice; inv != nil {
		rows = append(rows,
			[]string{"invoice", "subtotal", inv.Subtotal.StringFixed(2)},
			[]string{"invoice", "cgst_amount", inv.CGSTAmount.StringFixed(2)},
			[]string{"invoice", "sgst_amount", inv.SGSTAmount.StringFixed(2)},
			[]string{"invoice", "igst_amount", inv.IGSTAmount.StringFixed(2)},
			[]string{"invoice", "total", inv.Total.StringFixed(2)},
			[]string{"invoice", "is_inter_state", strconv.FormatBool(inv.IsInterState)},
		)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func penaltyRows(section string, p *domain.PenaltyResult) [][]string {
	return [][]string{
		{section, "late_days", strconv.Itoa(p.LateDays)},
		{section, "late_fee", p.LateFee.StringFixed(2)},
		{section, "fee_capped", strconv.FormatBool(p.FeeCapped)},
		{section, "interest_days", strconv.Itoa(p.InterestDays)},
		{section, "interest_amount", p.InterestAmount.StringFixed(2)},
		{section, "total_penalty", p.TotalPenalty.StringFixed(2)},
	}
}
