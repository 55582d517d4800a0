package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
)

type DeleteTransactionInput struct {
	ID          string `path:"id" format:"uuid" doc:"Transaction UUID"`
	UserID      string `query:"userID" required:"true" format:"uuid" doc:"User UUID"`
	ProfileName string `query:"profileName" required:"true" doc:"Budget profile"`
}

type DeleteTransactionOutput struct {
	Status int
}

// DeleteTransactionHandler handles DELETE /v1/transaction/{id}.
type DeleteTransactionHandler struct {
	Operator actionProcessor
}

func NewDeleteTransactionHandler(op actionProcessor) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Operator: op}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/v1/transaction/{id}",
		Summary:     "Delete transaction",
		Description: "Soft-deletes a transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	owner, err := respond.Owner(input.UserID, input.ProfileName)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, &actions.DeleteTransaction{Owner: owner, TransactionID: id}); err != nil {
		return nil, respond.Error(ctx, "failed to delete transaction", err)
	}
	return &DeleteTransactionOutput{Status: http.StatusNoContent}, nil
}

// PeriodBody selects one budget month of one profile.
type PeriodBody struct {
	UserID      string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
	ProfileName string `json:"profileName" required:"true" minLength:"1" doc:"Budget profile"`
	Month       int    `json:"month" doc:"Budget month"`
	Year        int    `json:"year" doc:"Budget year"`
}

type DeleteAllTransactionsInput struct {
	Body PeriodBody
}

type DeleteAllTransactionsOutput struct {
	Body struct {
		Deleted int64 `json:"deleted" doc:"Number of transactions deleted"`
	}
}

// DeleteAllTransactionsHandler handles POST /v1/transaction/delete-all.
type DeleteAllTransactionsHandler struct {
	Operator actionProcessor
}

func NewDeleteAllTransactionsHandler(op actionProcessor) *DeleteAllTransactionsHandler {
	return &DeleteAllTransactionsHandler{Operator: op}
}

func (h *DeleteAllTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-all-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/delete-all",
		Summary:     "Delete all transactions of a month",
		Description: "Soft-deletes every live transaction of the budget month.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteAllTransactionsHandler) handle(ctx context.Context, input *DeleteAllTransactionsInput) (*DeleteAllTransactionsOutput, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteAllTransactions{Owner: owner, Month: input.Body.Month, Year: input.Body.Year}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to delete transactions", err)
	}

	out := &DeleteAllTransactionsOutput{}
	out.Body.Deleted = action.Deleted
	return out, nil
}
