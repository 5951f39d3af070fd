package util

import (
	"fmt"

	"storefront/internal/domain/entity"
)

// FormatCurrency renders an amount the way the storefront shows prices, e.g. "₪ 69.00".
func FormatCurrency(amount entity.Money, symbol string) string {
	rounded := amount.Round2()
	if rounded.IsNegative() {
		return "-" + symbol + " " + rounded.Decimal().Abs().StringFixed(2)
	}

	return symbol + " " + rounded.String()
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
