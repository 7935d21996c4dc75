package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount string is not a positive
// decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ToCents converts a user-facing decimal amount string like "12.34" to
// integer cents. Fractions of a cent round half away from zero, so
// "12.345" becomes 1235. Zero and negative amounts are rejected.
func ToCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if !d.IsPositive() {
		return 0, ErrInvalidAmount
	}
	return d.Shift(2).Round(0).IntPart(), nil
}

// FormatCurrency renders integer cents as a display string, e.g.
// 1234 -> "$12.34". Arithmetic stays in integers so values already in
// cents never drift.
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ToDollars converts cents to a major-unit value for form editing.
func ToDollars(cents int64) float64 {
	return float64(cents) / 100
}
