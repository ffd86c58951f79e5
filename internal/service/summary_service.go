package service

import (
	"context"

	"github.com/carson-networks/autotrack-server/internal/storage"
	"github.com/carson-networks/autotrack-server/internal/storage/sqlconfig"
	"github.com/carson-networks/autotrack-server/internal/summary"
)

// SummaryService builds spending summaries from stored transactions.
type SummaryService struct {
	storage *storage.Storage
}

func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store}
}

// GetSummary loads all of a user's transactions oldest first and summarises them.
func (s *SummaryService) GetSummary(ctx context.Context, userID string) (summary.MonthlySummary, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{
		UserID:    userID,
		Ascending: true,
	})
	if err != nil {
		return summary.MonthlySummary{}, err
	}

	expenses := make([]summary.Expense, len(rows))
	for i, row := range rows {
		expenses[i] = summary.Expense{
			Category: row.Category,
			Amount:   row.Amount,
			Date:     row.Date,
		}
	}

	return summary.Build(expenses), nil
}
