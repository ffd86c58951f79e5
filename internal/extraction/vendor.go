package extraction

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	UnknownVendor = "Unknown Vendor"

	recognizerInputLimit = 512
	minEntityScore       = 0.7
	vendorScanLines      = 5
)

// ExtractVendor asks the recognizer for an organization name and falls back to
// scanning the first lines of the receipt.
func (e *Extractor) ExtractVendor(ctx context.Context, text string) string {
	if e.recognizer != nil {
		entities, err := e.recognizer.Recognize(ctx, truncateRunes(text, recognizerInputLimit))
		if err != nil {
			e.logger.WithError(err).Warn("Extractor.ExtractVendor.recognizer failed")
		}
		for _, entity := range entities {
			if !entity.IsOrganization() || entity.Score <= minEntityScore {
				continue
			}
			if vendor := strings.TrimSpace(entity.Word); vendor != "" {
				return vendor
			}
		}
	}

	return vendorFromLines(text)
}

// vendorFromLines picks the first short header line without digits near its start.
func vendorFromLines(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > vendorScanLines {
		lines = lines[:vendorScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		length := utf8.RuneCountInString(line)
		if length <= 3 || length >= 50 {
			continue
		}
		if strings.IndexFunc(truncateRunes(line, 10), unicode.IsDigit) >= 0 {
			continue
		}
		return line
	}

	return UnknownVendor
}

func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
