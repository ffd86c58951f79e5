package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/autotrack-server/internal/storage/sqlconfig"
)

func TestGetSummary_ReadsOldestFirst(t *testing.T) {
	store, mockTable := newTestStore(t)
	svc := NewSummaryService(store)

	mockTable.EXPECT().List(mock.Anything, &sqlconfig.TransactionFilter{UserID: "user-1", Ascending: true}).
		Return([]*sqlconfig.Transaction{
			{Category: "Food", Amount: decimal.NewFromInt(100), Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			{Category: "Transport", Amount: decimal.NewFromInt(50), Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)

	got, err := svc.GetSummary(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, got.TransactionCount)
	assert.Equal(t, "Food", got.TopCategory)
	assert.True(t, got.TotalSpent.Equal(decimal.NewFromInt(150)))
	assert.Len(t, got.MonthlyTotals, 2)
}

func TestGetSummary_NoTransactions(t *testing.T) {
	store, mockTable := newTestStore(t)
	svc := NewSummaryService(store)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.GetSummary(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, "N/A", got.TopCategory)
	assert.Len(t, got.Insights, 1)
}

func TestGetSummary_StorageError(t *testing.T) {
	store, mockTable := newTestStore(t)
	svc := NewSummaryService(store)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(nil, errors.New("permission denied"))

	_, err := svc.GetSummary(context.Background(), "user-1")
	assert.EqualError(t, err, "permission denied")
}
