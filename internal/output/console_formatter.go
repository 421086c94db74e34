package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
	"github.com/taxdoc/india-tax-calculator/pkg/numwords"
)

// ConsoleFormatter renders a detailed plain-text report, one block per
// requested section.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.CalculationReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintln(&buf, "INDIA TAX CALCULATION REPORT")
	fmt.Fprintln(&buf, "=================================================================")
	fmt.Fprintf(&buf, "Generated: %s\n", report.GeneratedAt.Format("02 Jan 2006 15:04"))
	fmt.Fprintln(&buf)

	if rc := report.RegimeComparison; rc != nil {
		writeRegimeComparison(&buf, rc)
	}
	if gp := report.GSTPenalty; gp != nil {
		writePenalty(&buf, "GST LATE FILING PENALTY", gp)
	}
	if tp := report.TDSPenalty; tp != nil {
		writePenalty(&buf, "TDS LATE FILING PENALTY", tp)
	}
	if ra := report.RentAgreement; ra != nil {
		writeRentAgreement(&buf, ra)
	}
	if inv := report.Invoice; inv != nil {
		writeInvoice(&buf, inv)
	}

	return buf.Bytes(), nil
}

func writeRegimeComparison(buf *bytes.Buffer, rc *domain.RegimeComparisonResult) {
	fmt.Fprintln(buf, "OLD vs NEW REGIME COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	writeRegime(buf, "OLD REGIME", rc.OldRegime)
	writeRegime(buf, "NEW REGIME", rc.NewRegime)

	switch rc.Recommendation {
	case domain.RecommendEqual:
		fmt.Fprintln(buf, "Both regimes produce the same tax.")
	default:
		fmt.Fprintf(buf, "Recommended: %s regime (saves %s / %s)\n",
			strings.ToUpper(string(rc.Recommendation)),
			FormatRupees(rc.Savings),
			FormatPercentage(rc.SavingsPercentage))
	}
	fmt.Fprintln(buf)
}

func writeRegime(buf *bytes.Buffer, title string, r domain.RegimeTaxResult) {
	fmt.Fprintf(buf, "%s\n", title)
	fmt.Fprintln(buf, strings.Repeat("-", 40))
	fmt.Fprintf(buf, "  Gross Income:      %s\n", FormatRupees(r.GrossIncome))
	fmt.Fprintf(buf, "  Deductions:        %s\n", FormatRupees(r.Deductions))
	fmt.Fprintf(buf, "  Taxable Income:    %s\n", FormatRupees(r.TaxableIncome))
	for _, slab := range r.Breakdown {
		if slab.TaxInSlab.IsZero() {
			continue
		}
		fmt.Fprintf(buf, "    Slab %s - %s @ %s: %s\n",
			FormatRupees(slab.SlabStart),
			FormatRupees(slab.SlabEnd),
			FormatPercentage(slab.Rate.Mul(hundred)),
			FormatRupees(slab.TaxInSlab))
	}
	fmt.Fprintf(buf, "  Tax Before Rebate: %s\n", FormatRupees(r.TaxBeforeRebate))
	if !r.Rebate.IsZero() {
		fmt.Fprintf(buf, "  Rebate (87A):      %s\n", FormatRupees(r.Rebate))
	}
	fmt.Fprintf(buf, "  Cess (4%%):         %s\n", FormatRupees(r.Cess))
	fmt.Fprintf(buf, "  TOTAL TAX:         %s\n", FormatRupees(r.TotalTax))
	fmt.Fprintf(buf, "  Effective Rate:    %s\n", FormatPercentage(r.EffectiveRate))
	fmt.Fprintln(buf)
}

func writePenalty(buf *bytes.Buffer, title string, p *domain.PenaltyResult) {
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Days Late:       %d\n", p.LateDays)
	if p.FeeCapped {
		fmt.Fprintf(buf, "  Late Fee:        %s (capped)\n", FormatRupees(p.LateFee))
	} else {
		fmt.Fprintf(buf, "  Late Fee:        %s\n", FormatRupees(p.LateFee))
	}
	if p.InterestDays > 0 {
		fmt.Fprintf(buf, "  Interest (%d days): %s\n", p.InterestDays, FormatRupees(p.InterestAmount))
	}
	fmt.Fprintf(buf, "  TOTAL PAYABLE:   %s\n", FormatRupees(p.TotalPenalty))
	fmt.Fprintln(buf)
}

func writeRentAgreement(buf *bytes.Buffer, ra *domain.RentAgreementCalculations) {
	fmt.Fprintln(buf, "RENT AGREEMENT SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Security Deposit:  %s\n", FormatRupees(ra.TotalSecurityDeposit))
	fmt.Fprintf(buf, "  First Month Total: %s\n", FormatRupees(ra.FirstMonthTotal))
	fmt.Fprintf(buf, "  Agreement Ends:    %s\n", ra.AgreementEndDate.Format("02 Jan 2006"))
	fmt.Fprintf(buf, "  Stamp Duty:        %s\n", FormatRupees(ra.StampDutyEstimate))
	fmt.Fprintf(buf, "    In words: %s\n", numwords.AmountInWords(ra.StampDutyEstimate))
	fmt.Fprintf(buf, "  Registration Fee:  %s\n", FormatRupees(ra.RegistrationFee))
	fmt.Fprintln(buf)
}

func writeInvoice(buf *bytes.Buffer, inv *domain.InvoiceTotals) {
	fmt.Fprintln(buf, "INVOICE GST TOTALS")
	fmt.Fprintln(buf, strings.Repeat("=", 50))
	fmt.Fprintf(buf, "  Subtotal:        %s\n", FormatRupees(inv.Subtotal))
	if inv.IsInterState {
		fmt.Fprintf(buf, "  IGST:            %s\n", FormatRupees(inv.IGSTAmount))
	} else {
		fmt.Fprintf(buf, "  CGST:            %s\n", FormatRupees(inv.CGSTAmount))
		fmt.Fprintf(buf, "  SGST:            %s\n", FormatRupees(inv.SGSTAmount))
	}
	fmt.Fprintf(buf, "  GRAND TOTAL:     %s\n", FormatRupees(inv.Total))
	fmt.Fprintf(buf, "    In words: %s\n", numwords.AmountInWords(inv.Total))
	fmt.Fprintln(buf)
}
