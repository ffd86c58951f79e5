package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/autotrack-server/internal/storage/sqlconfig"
)

// ErrTransactionNotFound is returned when updating a transaction that does not exist.
var ErrTransactionNotFound = sqlconfig.ErrTransactionNotFound

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID          uuid.UUID
	UserID      string
	Vendor      string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
	CreatedAt   time.Time
}

// TransactionInput is the user supplied part of a transaction, used for both
// create and update.
type TransactionInput struct {
	Vendor      string
	Category    string
	Amount      decimal.Decimal
	Date        time.Time
	Description *string
}
