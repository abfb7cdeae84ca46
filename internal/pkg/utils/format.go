package utils

import (
	"fmt"
	"strings"
)

// TruncateAddress shortens an address to its first and last eight
// characters for display ("7pQHLgaT...YLHsSXtk"). Short inputs are returned
// unchanged.
func TruncateAddress(address string) string {
	if len(address) <= 16 {
		return address
	}
	return address[:8] + "..." + address[len(address)-8:]
}

// FormatUSD renders a USD amount with two decimal places and a dollar sign.
func FormatUSD(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatSignedPercent renders a percentage with an explicit sign, the way
// daily-change figures are usually displayed.
func FormatSignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatQuantity renders a token quantity, trimming trailing zeros so dust
// amounts stay readable without padding whole numbers to six places.
func FormatQuantity(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
