package extraction

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	fieldWeight       = 0.25
	unparsedDateScore = 0.1
	recentDateDays    = 365
)

// ScoreConfidence adds a fixed weight for every field that looks resolved.
func ScoreConfidence(vendor string, amount decimal.Decimal, date, category string, now time.Time) float64 {
	score := 0.0

	if vendor != "" && vendor != UnknownVendor {
		score += fieldWeight
	}

	if amount.IsPositive() {
		score += fieldWeight
	}

	parsed, err := time.ParseInLocation(isoDateLayout, date, now.Location())
	if err == nil {
		if wholeDaysBetween(parsed, now) < recentDateDays {
			score += fieldWeight
		}
	} else {
		// Not reachable through Extract, ExtractDate always formats a valid date.
		score += unparsedDateScore
	}

	if category != OtherCategory {
		score += fieldWeight
	}

	return math.Min(score, 1.0)
}

// wholeDaysBetween floors the elapsed time to days before taking the magnitude.
func wholeDaysBetween(from, to time.Time) int {
	days := int(math.Floor(to.Sub(from).Hours() / 24))
	if days < 0 {
		days = -days
	}
	return days
}
