package transaction

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/autotrack-server/internal/service"
)

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	TransactionPath
	Body TransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, input service.TransactionInput) (service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /api/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/api/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Replaces vendor, category, amount, date and description of a transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData(ctx, "authorizationProvided", input.Authorization != "")

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	txInput, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := timeCall(ctx, "updateTransactionMs")
	updated, err := h.TransactionService.UpdateTransaction(ctx, id, txInput)
	stopTimer()
	if errors.Is(err, service.ErrTransactionNotFound) {
		return nil, huma.NewError(http.StatusNotFound, fmt.Sprintf("Transaction %s not found", id))
	}
	if err != nil {
		logData(ctx, "error", err.Error())
		return nil, huma.NewError(http.StatusInternalServerError, fmt.Sprintf("Failed to update transaction: %v", err))
	}

	return &UpdateTransactionOutput{Body: toTransaction(updated)}, nil
}
