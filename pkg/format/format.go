package format

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	crore    = 10_000_000
	lakh     = 100_000
	thousand = 1_000
)

const rupee = "₹"

// FormatCurrencyMagnitude abbreviates an INR amount using crore, lakh and
// thousand suffixes. Values on a threshold take the larger suffix.
func FormatCurrencyMagnitude(n float64) string {
	if n < 0 {
		return "-" + FormatCurrencyMagnitude(-n)
	}

	switch {
	case n >= crore:
		return fmt.Sprintf("%s%.1fCr", rupee, roundHalfUp(n/crore, 1))
	case n >= lakh:
		return fmt.Sprintf("%s%.1fL", rupee, roundHalfUp(n/lakh, 1))
	case n >= thousand:
		return fmt.Sprintf("%s%.0fK", rupee, roundHalfUp(n/thousand, 0))
	default:
		return fmt.Sprintf("%s%.0f", rupee, roundHalfUp(n, 0))
	}
}

// FormatCount groups an integer into thousands, e.g. 1234567 -> "1,234,567".
func FormatCount(n int64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d", n)
}

// FormatPercent renders a percentage without trailing zeros, e.g. 12.5 -> "12.5%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// FormatDecimal renders v with a fixed number of decimals using half-up rounding.
func FormatDecimal(v float64, decimals int) string {
	return strconv.FormatFloat(roundHalfUp(v, decimals), 'f', decimals, 64)
}

func roundHalfUp(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Floor(v*p+0.5) / p
}
