// Package numwords renders rupee amounts as English words using the Indian
// numbering scale (thousand, lakh, crore).
package numwords

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

const (
	lakh  = 100_000
	crore = 10_000_000
)

// Words converts a non-negative integer to its cardinal English words on the
// Indian scale. Zero converts to the empty string; callers that need "Zero"
// should special-case it (AmountInWords does).
func Words(num int64) string {
	switch {
	case num <= 0:
		return ""
	case num < 20:
		return ones[num]
	case num < 100:
		return strings.TrimSpace(tens[num/10] + " " + ones[num%10])
	case num < 1000:
		return join(ones[num/100]+" Hundred", Words(num%100))
	case num < lakh:
		return join(Words(num/1000)+" Thousand", Words(num%1000))
	case num < crore:
		return join(Words(num/lakh)+" Lakh", Words(num%lakh))
	default:
		return join(Words(num/crore)+" Crore", Words(num%crore))
	}
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}

// AmountInWords renders a non-negative rupee amount as words, terminating
// with "Rupees Only". Fractional paise are rendered as "and N Paise" when
// present. A zero amount renders as "Zero Rupees Only".
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.Floor().IntPart()
	paise := amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	if rupees == 0 && paise == 0 {
		return "Zero Rupees Only"
	}

	var b strings.Builder
	if rupees > 0 {
		b.WriteString(Words(rupees))
		b.WriteString(" Rupees")
	} else {
		b.WriteString("Zero Rupees")
	}
	if paise > 0 {
		b.WriteString(" and ")
		b.WriteString(Words(paise))
		b.WriteString(" Paise")
	}
	b.WriteString(" Only")
	return b.String()
}
