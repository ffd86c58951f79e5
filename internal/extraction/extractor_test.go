package extraction

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/autotrack-server/internal/logging"
	"github.com/carson-networks/autotrack-server/internal/ner"
)

type mockRecognizer struct {
	mock.Mock
}

func (m *mockRecognizer) Recognize(ctx context.Context, text string) ([]ner.Entity, error) {
	args := m.Called(ctx, text)
	entities, _ := args.Get(0).([]ner.Entity)
	return entities, args.Error(1)
}

func newTestExtractor(recognizer EntityRecognizer) *Extractor {
	extractor := NewExtractor(recognizer, logging.SetupLogging())
	extractor.Now = func() time.Time { return fixedNow }
	return extractor
}

const pizzaReceipt = `Joe's Pizza
123 Main Street
03/02/2025
Pepperoni Slice
Garlic Knots
Subtotal $18.00
Tax $1.50
Total $19.50
Thank you!`

func TestExtract_WithoutRecognizer(t *testing.T) {
	data, err := newTestExtractor(nil).Extract(context.Background(), pizzaReceipt)
	require.NoError(t, err)

	assert.Equal(t, "Joe's Pizza", data.Vendor)
	assert.True(t, data.Amount.Equal(decimal.RequireFromString("19.50")))
	assert.Equal(t, "2025-03-02", data.Date)
	assert.Equal(t, "Food & Dining", data.Category)
	assert.Equal(t, "123 Main Street | 03/02/2025 | Pepperoni Slice", data.Description)
	assert.InDelta(t, 1.0, data.Confidence, 1e-9)
}

func TestExtract_EmptyText(t *testing.T) {
	data, err := newTestExtractor(nil).Extract(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, UnknownVendor, data.Vendor)
	assert.True(t, data.Amount.IsZero())
	assert.Equal(t, "2025-03-10", data.Date)
	assert.Equal(t, OtherCategory, data.Category)
	assert.Equal(t, "Purchase from Unknown Vendor", data.Description)
	assert.InDelta(t, 0.25, data.Confidence, 1e-9)
}

func TestExtract_RecognizerOrganization(t *testing.T) {
	recognizer := new(mockRecognizer)
	recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]ner.Entity{
		{Group: "PER", Score: 0.99, Word: "Jane"},
		{Group: "ORG", Score: 0.91, Word: " Shell Oil "},
	}, nil)

	data, err := newTestExtractor(recognizer).Extract(context.Background(), "SHELL\nUnleaded gas 10.000 gal\nTotal $45.10")
	require.NoError(t, err)

	assert.Equal(t, "Shell Oil", data.Vendor)
	assert.True(t, data.Amount.Equal(decimal.RequireFromString("45.10")))
	assert.Equal(t, "Transportation", data.Category)
	recognizer.AssertExpectations(t)
}

func TestExtractVendor_LowScoreFallsBack(t *testing.T) {
	recognizer := new(mockRecognizer)
	recognizer.On("Recognize", mock.Anything, mock.Anything).Return([]ner.Entity{
		{Group: "ORGANIZATION", Score: 0.7, Word: "Maybe Corp"},
		{Group: "MISC", Score: 0.95, Word: "Receipt"},
	}, nil)

	vendor := newTestExtractor(recognizer).ExtractVendor(context.Background(), "Corner Deli\n42 Elm St")
	assert.Equal(t, "Corner Deli", vendor)
}

func TestExtractVendor_RecognizerErrorFallsBack(t *testing.T) {
	recognizer := new(mockRecognizer)
	recognizer.On("Recognize", mock.Anything, mock.Anything).Return(nil, errors.New("model unavailable"))

	vendor := newTestExtractor(recognizer).ExtractVendor(context.Background(), "Corner Deli\n42 Elm St")
	assert.Equal(t, "Corner Deli", vendor)
	recognizer.AssertExpectations(t)
}

func TestExtractVendor_RecognizerInputTruncated(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "Café Lumière "
	}

	recognizer := new(mockRecognizer)
	recognizer.On("Recognize", mock.Anything, mock.MatchedBy(func(text string) bool {
		return utf8.RuneCountInString(text) == recognizerInputLimit
	})).Return([]ner.Entity{{Group: "ORG", Score: 0.8, Word: "Café Lumière"}}, nil)

	vendor := newTestExtractor(recognizer).ExtractVendor(context.Background(), long)
	assert.Equal(t, "Café Lumière", vendor)
	recognizer.AssertExpectations(t)
}

func TestExtract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestExtractor(nil).Extract(ctx, pizzaReceipt)
	assert.ErrorIs(t, err, context.Canceled)
}
