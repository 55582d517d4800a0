package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
)

// BypassTransactionHandler handles POST /v1/transaction/bypass.
type BypassTransactionHandler struct {
	Operator actionProcessor
}

func NewBypassTransactionHandler(op actionProcessor) *BypassTransactionHandler {
	return &BypassTransactionHandler{Operator: op}
}

func (h *BypassTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bypass-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/bypass",
		Summary:     "Create transaction without period",
		Description: "Records the transaction with no budget period reference. Meant for manual recovery when period resolution keeps failing.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *BypassTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	draft, err := parseDraft(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.BypassTransaction{Draft: draft, IncludeMonth: input.IncludeMonth}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: createdResponse(action.Result, action.Month)}, nil
}
