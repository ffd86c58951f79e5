package service

import (
	"context"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/autotrack-server/internal/storage"
	"github.com/carson-networks/autotrack-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns every transaction of a user, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context, userID string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = rowToTransaction(row)
	}

	return convertedTransactions, nil
}

// CreateTransaction stores a transaction for userID and returns the stored record.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID string, input TransactionInput) (Transaction, error) {
	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:            userID,
		TransactionUpdate: inputToUpdate(input),
	})
	if err != nil {
		return Transaction{}, err
	}

	return rowToTransaction(row), nil
}

// UpdateTransaction replaces the editable fields of a transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input TransactionInput) (Transaction, error) {
	update := inputToUpdate(input)
	row, err := s.storage.Transactions.Update(ctx, id, &update)
	if err != nil {
		return Transaction{}, err
	}

	return rowToTransaction(row), nil
}

// DeleteTransaction removes a transaction.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.storage.Transactions.Delete(ctx, id)
}

func inputToUpdate(input TransactionInput) sqlconfig.TransactionUpdate {
	return sqlconfig.TransactionUpdate{
		Vendor:      input.Vendor,
		Category:    input.Category,
		Amount:      input.Amount,
		Date:        input.Date,
		Description: null.FromPtr(input.Description),
	}
}

func rowToTransaction(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Vendor:      row.Vendor,
		Category:    row.Category,
		Amount:      row.Amount,
		Date:        row.Date,
		Description: row.Description.Ptr(),
		CreatedAt:   row.CreatedAt,
	}
}
