package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/autotrack-server/internal/summary"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) GetSummary(ctx context.Context, userID string) (summary.MonthlySummary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(summary.MonthlySummary), args.Error(1)
}

func newTestAPI(t *testing.T, svc summaryGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_GetSummary_Success(t *testing.T) {
	built := summary.Build([]summary.Expense{
		{Category: "Food", Amount: decimal.NewFromInt(100), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Category: "Transport", Amount: decimal.NewFromInt(50), Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	})

	m := new(mockSummaryService)
	m.On("GetSummary", mock.Anything, "user-1").Return(built, nil)

	resp := newTestAPI(t, m).Get("/api/summary?user_id=user-1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlySummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(150), body.TotalSpent)
	assert.Equal(t, 2, body.TransactionCount)
	assert.Equal(t, "Food", body.TopCategory)
	assert.Equal(t, map[string]float64{"Food": 100, "Transport": 50}, body.SpendingByCategory)
	assert.Equal(t, []MonthlyTotal{{Month: "Jan 2024", Total: 100}, {Month: "Feb 2024", Total: 50}}, body.MonthlyTotals)
	assert.LessOrEqual(t, len(body.Insights), 5)
	m.AssertExpectations(t)
}

func TestHTTP_GetSummary_NoTransactions(t *testing.T) {
	m := new(mockSummaryService)
	m.On("GetSummary", mock.Anything, "new-user").Return(summary.Build(nil), nil)

	resp := newTestAPI(t, m).Get("/api/summary?user_id=new-user")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlySummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(0), body.TotalSpent)
	assert.Equal(t, 0, body.TransactionCount)
	assert.Equal(t, summary.NoTopCategory, body.TopCategory)
	assert.Empty(t, body.SpendingByCategory)
	assert.Empty(t, body.MonthlyTotals)
	assert.Len(t, body.Insights, 1)
}

func TestHTTP_GetSummary_StorageError(t *testing.T) {
	m := new(mockSummaryService)
	m.On("GetSummary", mock.Anything, "user-1").Return(summary.MonthlySummary{}, errors.New("relation does not exist"))

	resp := newTestAPI(t, m).Get("/api/summary?user_id=user-1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Failed to generate summary: relation does not exist")
}

func TestHTTP_GetSummary_MissingUserID(t *testing.T) {
	m := new(mockSummaryService)

	resp := newTestAPI(t, m).Get("/api/summary")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	m.AssertNotCalled(t, "GetSummary")
}
