package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// StateRecord is static reference data for an Indian state or union
// territory: the 2-digit GST state code, the postal abbreviation, and the
// stamp-duty rate applied to rental agreements registered there.
type StateRecord struct {
	Code             string          `json:"code"` // GST state code, e.g. "29"
	Abbr             string          `json:"abbr"` // postal abbreviation, e.g. "KA"
	Name             string          `json:"name"`
	StampDutyPercent decimal.Decimal `json:"stamp_duty_percent"`
}

// DefaultStampDutyPercent applies when a state code is not in the table
var DefaultStampDutyPercent = decimal.NewFromInt(2)

func pct(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// States holds the 36 states and union territories keyed by GST state code.
// Loaded once at process start and never mutated; stamp-duty percentages
// feed the rent-agreement estimator bit-for-bit.
var States = []StateRecord{
	{"01", "JK", "Jammu and Kashmir", pct(2)},
	{"02", "HP", "Himachal Pradesh", pct(2)},
	{"03", "PB", "Punjab", pct(1)},
	{"04", "CH", "Chandigarh", pct(2)},
	{"05", "UK", "Uttarakhand", pct(2)},
	{"06", "HR", "Haryana", pct(1.5)},
	{"07", "DL", "Delhi", pct(2)},
	{"08", "RJ", "Rajasthan", pct(0.5)},
	{"09", "UP", "Uttar Pradesh", pct(4)},
	{"10", "BR", "Bihar", pct(1)},
	{"11", "SK", "Sikkim", pct(2)},
	{"12", "AR", "Arunachal Pradesh", pct(2)},
	{"13", "NL", "Nagaland", pct(2)},
	{"14", "MN", "Manipur", pct(2)},
	{"15", "MZ", "Mizoram", pct(2)},
	{"16", "TR", "Tripura", pct(2)},
	{"17", "ML", "Meghalaya", pct(2)},
	{"18", "AS", "Assam", pct(2)},
	{"19", "WB", "West Bengal", pct(2)},
	{"20", "JH", "Jharkhand", pct(2)},
	{"21", "OD", "Odisha", pct(2)},
	{"22", "CG", "Chhattisgarh", pct(2)},
	{"23", "MP", "Madhya Pradesh", pct(2)},
	{"24", "GJ", "Gujarat", pct(1)},
	{"26", "DD", "Dadra and Nagar Haveli and Daman and Diu", pct(2)},
	{"27", "MH", "Maharashtra", pct(0.25)},
	{"29", "KA", "Karnataka", pct(1)},
	{"30", "GA", "Goa", pct(2)},
	{"31", "LD", "Lakshadweep", pct(2)},
	{"32", "KL", "Kerala", pct(2)},
	{"33", "TN", "Tamil Nadu", pct(1)},
	{"34", "PY", "Puducherry", pct(2)},
	{"35", "AN", "Andaman and Nicobar Islands", pct(2)},
	{"36", "TS", "Telangana", pct(0.5)},
	{"37", "AP", "Andhra Pradesh", pct(2)},
	{"38", "LA", "Ladakh", pct(2)},
}

var (
	statesByCode = make(map[string]StateRecord, len(States))
	statesByAbbr = make(map[string]StateRecord, len(States))
)

func init() {
	for _, s := range States {
		statesByCode[s.Code] = s
		statesByAbbr[s.Abbr] = s
	}
}

// StateByCode looks up a state by GST state code or postal abbreviation
func StateByCode(code string) (StateRecord, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if s, ok := statesByCode[code]; ok {
		return s, true
	}
	s, ok := statesByAbbr[code]
	return s, ok
}

// StampDutyPercentFor returns the state's stamp-duty percentage, falling
// back to DefaultStampDutyPercent for unknown codes.
func StampDutyPercentFor(code string) decimal.Decimal {
	if s, ok := StateByCode(code); ok {
		return s.StampDutyPercent
	}
	return DefaultStampDutyPercent
}

// gstinPattern validates the 15-character GSTIN layout. The first two
// digits encode the state of registration.
var gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

// ValidGSTIN reports whether the string is a well-formed GSTIN
func ValidGSTIN(gstin string) bool {
	return gstinPattern.MatchString(strings.ToUpper(strings.TrimSpace(gstin)))
}

// GSTINStateCode extracts the 2-digit state code from a GSTIN.
// Returns false for malformed input.
func GSTINStateCode(gstin string) (string, bool) {
	gstin = strings.ToUpper(strings.TrimSpace(gstin))
	if !gstinPattern.MatchString(gstin) {
		return "", false
	}
	return gstin[:2], true
}
