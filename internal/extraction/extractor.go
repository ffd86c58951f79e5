package extraction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/autotrack-server/internal/ner"
)

const isoDateLayout = "2006-01-02"

// ExtractedData is the structured guess produced from one receipt text.
type ExtractedData struct {
	Vendor      string
	Amount      decimal.Decimal
	Date        string
	Category    string
	Description string
	Confidence  float64
}

// EntityRecognizer labels spans of text, used as a hint for the vendor name.
type EntityRecognizer interface {
	Recognize(ctx context.Context, text string) ([]ner.Entity, error)
}

// Extractor runs the field heuristics over receipt text. It holds no per-call
// state and is safe for concurrent use.
type Extractor struct {
	recognizer EntityRecognizer
	logger     *logrus.Logger

	// Now is the clock used for the date fallback and confidence scoring.
	Now func() time.Time
}

// NewExtractor creates an Extractor. A nil recognizer means vendors always come
// from the line scan.
func NewExtractor(recognizer EntityRecognizer, logger *logrus.Logger) *Extractor {
	return &Extractor{
		recognizer: recognizer,
		logger:     logger,
		Now:        time.Now,
	}
}

// Extract derives every field from text. Parse failures fall back to defaults,
// so the only error is a cancelled context.
func (e *Extractor) Extract(ctx context.Context, text string) (ExtractedData, error) {
	now := e.Now()

	vendor := e.ExtractVendor(ctx, text)
	if err := ctx.Err(); err != nil {
		return ExtractedData{}, err
	}

	amount := ExtractAmount(text)
	date := ExtractDate(text, now)
	category := ClassifyCategory(text, vendor)
	description := GenerateDescription(text, vendor)

	return ExtractedData{
		Vendor:      vendor,
		Amount:      amount,
		Date:        date,
		Category:    category,
		Description: description,
		Confidence:  ScoreConfidence(vendor, amount, date, category, now),
	}, nil
}
