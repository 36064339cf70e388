package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice converts a formatted currency string such as "$1,234.56" into a
// decimal amount. A leading currency symbol and grouping separators are
// stripped; anything else is an error.
func ParsePrice(price string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(price)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse price %q: %w", price, err)
	}
	return amount, nil
}

// FormatUSD renders an amount for display, rounded to two decimal places.
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
