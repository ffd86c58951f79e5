package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/autotrack-server/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	UserQuery
	Body TransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, userID string, input service.TransactionInput) (service.Transaction, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transactions",
		Summary:     "Create transaction",
		Description: "Stores a transaction for the user and returns the stored record.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData(ctx, "authorizationProvided", input.Authorization != "")

	txInput, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := timeCall(ctx, "createTransactionMs")
	created, err := h.TransactionService.CreateTransaction(ctx, input.UserID, txInput)
	stopTimer()
	if err != nil {
		logData(ctx, "error", err.Error())
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to create transaction: %v", err))
	}

	logData(ctx, "transactionID", created.ID.String())
	return &CreateTransactionOutput{Body: toTransaction(created)}, nil
}
