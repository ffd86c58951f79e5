package extraction

import (
	"regexp"
	"time"
)

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	regexp.MustCompile(`(?i)(\d{4}[-/]\d{1,2}[-/]\d{1,2})`),
	regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})`),
}

var dateLayouts = []string{
	"1/2/2006",
	"1-2-2006",
	"2006-1-2",
	"1/2/06",
	"January 2, 2006",
	"Jan 2, 2006",
}

// ExtractDate returns the first parseable date in text as YYYY-MM-DD, or the
// date of now when nothing parses.
func ExtractDate(text string, now time.Time) string {
	for _, pattern := range datePatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}

		for _, layout := range dateLayouts {
			parsed, err := time.Parse(layout, match[1])
			if err == nil {
				return parsed.Format(isoDateLayout)
			}
		}
	}

	return now.Format(isoDateLayout)
}
