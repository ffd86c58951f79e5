package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Tried in order. Within the first pattern that matches, the last match is
// used since totals are usually printed at the bottom.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(\d+(?:,\d{3})*(?:\.\d{2}))\s*(?:USD|dollars?)`),
	regexp.MustCompile(`(?i)(?:total|amount|subtotal|balance)[\s:]*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`),
}

// ExtractAmount returns the receipt amount, or zero when none is found.
func ExtractAmount(text string) decimal.Decimal {
	for _, pattern := range amountPatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}

		raw := strings.ReplaceAll(matches[len(matches)-1][1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		return amount
	}

	return decimal.Zero
}
