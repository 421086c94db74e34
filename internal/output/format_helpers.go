package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatRupees formats a decimal as INR currency with 2 decimals and Indian
// digit grouping (12,34,567.89). Kept here so it can be reused by multiple
// formatters and unit tested in isolation.
func FormatRupees(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	parts := strings.SplitN(s, ".", 2)
	grouped := groupIndian(parts[0])
	out := "₹" + grouped + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// groupIndian inserts commas in the Indian pattern: the last three digits
// form one group, every pair before that forms another (1,00,00,000).
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
