package format

import (
	"fmt"
	"strings"
)

// Currency is the fixed display currency for the fleet.
const Currency = "KES"

// KES renders an amount as "KES 1,234.56": thousands separators and exactly
// two decimal places. Formatting is fixed-locale; the dashboard is
// single-currency.
func KES(amount float64) string {
	return Currency + " " + Amount(amount)
}

// Amount renders a number with thousands separators and two decimals.
func Amount(amount float64) string {
	s := fmt.Sprintf("%.2f", amount)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}
