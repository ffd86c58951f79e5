package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/autotrack-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	UserQuery
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, userID string) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns every transaction of a user, newest date first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData(ctx, "authorizationProvided", input.Authorization != "")

	stopTimer := timeCall(ctx, "listTransactionsMs")
	transactions, err := h.TransactionService.ListTransactions(ctx, input.UserID)
	stopTimer()
	if err != nil {
		logData(ctx, "error", err.Error())
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to fetch transactions: %v", err))
	}

	logData(ctx, "transactionCount", len(transactions))

	resp := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		resp[i] = toTransaction(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
