package extraction

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	descriptionLines     = 3
	descriptionSeparator = " | "
	maxDescriptionLine   = 50
)

var (
	descriptionSkipTerms = []string{"receipt", "thank you", "total", "subtotal", "tax", "change"}
	numericLine          = regexp.MustCompile(`^\$?\d+\.?\d*$`)
)

// GenerateDescription joins the first few item-like lines of the receipt.
func GenerateDescription(text, vendor string) string {
	skipTerms := append(append([]string{}, descriptionSkipTerms...), strings.ToLower(vendor))

	var kept []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || utf8.RuneCountInString(line) >= maxDescriptionLine {
			continue
		}
		if containsAny(strings.ToLower(line), skipTerms) || numericLine.MatchString(line) {
			continue
		}

		kept = append(kept, line)
		if len(kept) == descriptionLines {
			break
		}
	}

	if len(kept) == 0 {
		return "Purchase from " + vendor
	}
	return strings.Join(kept, descriptionSeparator)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
