package extract

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/autotrack-server/internal/extraction"
	"github.com/carson-networks/autotrack-server/internal/logging"
)

// ExtractRequest carries the raw receipt text.
type ExtractRequest struct {
	Text string `json:"text" doc:"Receipt text, typically OCR output"`
}

// ExtractedData is the structured guess returned for a receipt.
type ExtractedData struct {
	Vendor      string  `json:"vendor" doc:"Merchant name, or Unknown Vendor"`
	Amount      float64 `json:"amount" minimum:"0" doc:"Total amount, 0 when none was found"`
	Date        string  `json:"date" format:"date" doc:"Purchase date, today when none was found"`
	Category    string  `json:"category" enum:"Food & Dining,Transportation,Shopping,Entertainment,Utilities,Healthcare,Travel,Other"`
	Description string  `json:"description" doc:"Short summary built from the receipt lines"`
	Confidence  float64 `json:"confidence" minimum:"0" maximum:"1" doc:"Heuristic score of how many fields were found"`
}

type ExtractInput struct {
	Body ExtractRequest
}

type ExtractOutput struct {
	Body ExtractedData
}

type dataExtractor interface {
	Extract(ctx context.Context, text string) (extraction.ExtractedData, error)
}

// Handler handles POST /api/extract.
type Handler struct {
	Extractor dataExtractor
}

func NewHandler(extractor dataExtractor) *Handler {
	return &Handler{Extractor: extractor}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "extract-data",
		Method:      http.MethodPost,
		Path:        "/api/extract",
		Summary:     "Extract receipt data",
		Description: "Guesses vendor, amount, date, category and description from receipt text.",
		Tags:        []string{"Extraction"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *ExtractInput) (*ExtractOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("textLength", len(input.Body.Text))
		defer logData.AddTiming("extractMs")()
	}

	data, err := h.Extractor.Extract(ctx, input.Body.Text)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to extract data: %v", err))
	}

	if logData != nil {
		logData.AddData("confidence", data.Confidence)
	}

	return &ExtractOutput{Body: ExtractedData{
		Vendor:      data.Vendor,
		Amount:      data.Amount.InexactFloat64(),
		Date:        data.Date,
		Category:    data.Category,
		Description: data.Description,
		Confidence:  data.Confidence,
	}}, nil
}
