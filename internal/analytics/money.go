package analytics

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseAmount converts a stored monetary value to a float. Empty, missing or
// malformed values parse to 0 rather than erroring; every sum in the package
// goes through this one function so the coercion behaves identically
// everywhere.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount as Indian rupees with lakh/crore grouping and
// no decimal places. Display helper only; nothing downstream computes on it.
func FormatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}
