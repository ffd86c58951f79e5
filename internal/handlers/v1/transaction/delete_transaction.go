package transaction

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

const deletedMessage = "Transaction deleted successfully"

type DeleteTransactionInput struct {
	TransactionPath
}

type DeleteTransactionResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /api/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transactions/{id}",
		Summary:     "Delete transaction",
		Description: "Deletes a transaction. Deleting an unknown id also succeeds.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData(ctx, "authorizationProvided", input.Authorization != "")

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	stopTimer := timeCall(ctx, "deleteTransactionMs")
	err = h.TransactionService.DeleteTransaction(ctx, id)
	stopTimer()
	if err != nil {
		logData(ctx, "error", err.Error())
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to delete transaction: %v", err))
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponse{Message: deletedMessage}}, nil
}
