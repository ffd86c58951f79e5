package summary

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/autotrack-server/internal/logging"
	"github.com/carson-networks/autotrack-server/internal/summary"
)

type MonthlyTotal struct {
	Month string  `json:"month" doc:"Month label, e.g. Jan 2024"`
	Total float64 `json:"total"`
}

// MonthlySummary is the API response for a user's spending summary.
type MonthlySummary struct {
	TotalSpent         float64            `json:"total_spent"`
	TransactionCount   int                `json:"transaction_count"`
	TopCategory        string             `json:"top_category" doc:"Category with the highest total, N/A without transactions"`
	SpendingByCategory map[string]float64 `json:"spending_by_category"`
	MonthlyTotals      []MonthlyTotal     `json:"monthly_totals" doc:"Oldest month first"`
	Insights           []string           `json:"insights" maxItems:"5"`
}

type GetSummaryInput struct {
	UserID        string `query:"user_id" required:"true" minLength:"1" doc:"Owner of the transactions"`
	Authorization string `header:"Authorization" doc:"Bearer token, currently not validated"`
}

type GetSummaryOutput struct {
	Body MonthlySummary
}

type summaryGetter interface {
	GetSummary(ctx context.Context, userID string) (summary.MonthlySummary, error)
}

// Handler handles GET /api/summary.
type Handler struct {
	SummaryService summaryGetter
}

func NewHandler(svc summaryGetter) *Handler {
	return &Handler{SummaryService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/api/summary",
		Summary:     "Get spending summary",
		Description: "Aggregates all of a user's transactions into totals, a monthly series and insights.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		logData.AddData("authorizationProvided", input.Authorization != "")
		stopTimer = logData.AddTiming("getSummaryMs")
	}

	result, err := h.SummaryService.GetSummary(ctx, input.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to generate summary: %v", err))
	}

	if logData != nil {
		logData.AddData("transactionCount", result.TransactionCount)
	}

	return &GetSummaryOutput{Body: toMonthlySummary(result)}, nil
}

func toMonthlySummary(s summary.MonthlySummary) MonthlySummary {
	byCategory := make(map[string]float64, len(s.SpendingByCategory))
	for category, total := range s.SpendingByCategory {
		byCategory[category] = total.InexactFloat64()
	}

	monthly := make([]MonthlyTotal, len(s.MonthlyTotals))
	for i, m := range s.MonthlyTotals {
		monthly[i] = MonthlyTotal{Month: m.Month, Total: m.Total.InexactFloat64()}
	}

	insights := s.Insights
	if insights == nil {
		insights = []string{}
	}

	return MonthlySummary{
		TotalSpent:         s.TotalSpent.InexactFloat64(),
		TransactionCount:   s.TransactionCount,
		TopCategory:        s.TopCategory,
		SpendingByCategory: byCategory,
		MonthlyTotals:      monthly,
		Insights:           insights,
	}
}
