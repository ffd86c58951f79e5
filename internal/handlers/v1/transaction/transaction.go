package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/autotrack-server/internal/logging"
	"github.com/carson-networks/autotrack-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a stored transaction.
type Transaction struct {
	ID          string  `json:"id" doc:"Transaction UUID"`
	UserID      string  `json:"user_id" doc:"Owner of the transaction"`
	Vendor      string  `json:"vendor" doc:"Merchant name"`
	Category    string  `json:"category" doc:"Spending category"`
	Amount      float64 `json:"amount" doc:"Amount spent"`
	Date        string  `json:"date" format:"date" doc:"Purchase date, YYYY-MM-DD"`
	Description *string `json:"description" nullable:"true" doc:"Optional note"`
	CreatedAt   string  `json:"created_at" format:"date-time" doc:"RFC3339 time the record was stored"`
}

// TransactionBody is the request body for creating or updating a transaction.
type TransactionBody struct {
	Vendor      string  `json:"vendor" doc:"Merchant name"`
	Category    string  `json:"category" doc:"Spending category"`
	Amount      float64 `json:"amount" doc:"Amount spent"`
	Date        string  `json:"date" format:"date" doc:"Purchase date, YYYY-MM-DD"`
	Description *string `json:"description,omitempty" doc:"Optional note"`
}

// UserQuery selects whose transactions a request works on. The Authorization
// header is accepted for client compatibility but is not verified, so any
// caller can act on any user_id.
type UserQuery struct {
	UserID        string `query:"user_id" required:"true" minLength:"1" doc:"Owner of the transactions"`
	Authorization string `header:"Authorization" doc:"Bearer token, currently not validated"`
}

// TransactionPath identifies a single transaction.
type TransactionPath struct {
	ID            string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Authorization string `header:"Authorization" doc:"Bearer token, currently not validated"`
}

func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date", err)
	}

	return service.TransactionInput{
		Vendor:      body.Vendor,
		Category:    body.Category,
		Amount:      decimal.NewFromFloat(body.Amount),
		Date:        date,
		Description: body.Description,
	}, nil
}

func toTransaction(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID.String(),
		UserID:      tx.UserID,
		Vendor:      tx.Vendor,
		Category:    tx.Category,
		Amount:      tx.Amount.InexactFloat64(),
		Date:        tx.Date.Format(dateLayout),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}

// timeCall records how long a service call took when request logging is active.
func timeCall(ctx context.Context, name string) func() {
	l := logging.GetLogData(ctx)
	if l == nil {
		return func() {}
	}
	return l.AddTiming(name)
}

func logData(ctx context.Context, key string, value interface{}) {
	if l := logging.GetLogData(ctx); l != nil {
		l.AddData(key, value)
	}
}
