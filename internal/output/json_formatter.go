package output

import (
	"encoding/json"

	"github.com/taxdoc/india-tax-calculator/internal/domain"
)

// JSONFormatter serializes the calculation report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.CalculationReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
