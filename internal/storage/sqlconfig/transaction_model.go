package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrTransactionNotFound is returned when an update matches no row.
var ErrTransactionNotFound = errors.New("transaction not found")

// Transaction represents a transaction record.
type Transaction struct {
	ID          uuid.UUID        `db:"id"`
	UserID      string           `db:"user_id"`
	Vendor      string           `db:"vendor"`
	Category    string           `db:"category"`
	Amount      decimal.Decimal  `db:"amount"`
	Date        time.Time        `db:"date"`
	Description null.Val[string] `db:"description"`
	CreatedAt   time.Time        `db:"created_at"`
}

// TransactionUpdate holds the user editable columns.
type TransactionUpdate struct {
	Vendor      string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description null.Val[string]
}

// TransactionCreate is the input for creating a new transaction. ID and
// CreatedAt are assigned by the database.
type TransactionCreate struct {
	UserID string
	TransactionUpdate
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID string
	// Ascending orders by date oldest first. The default is newest first.
	Ascending bool
}

// ITransactionTable defines the interface for transaction storage operations.
// Every method is a single statement; there are no multi-statement transactions.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
}
