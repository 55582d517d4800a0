package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	IncludeMonth bool `query:"includeMonth" doc:"Also return the budget month's live transactions with the new one first"`
	Body         TransactionDraftBody
}

// CreateTransactionResponse is the created transaction, optionally followed by
// its budget month.
type CreateTransactionResponse struct {
	Transaction
	MonthTransactions []Transaction `json:"monthTransactions,omitempty" doc:"The month's live transactions, most recent insert first"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   CreateTransactionResponse
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	Operator actionProcessor
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(op actionProcessor) *CreateTransactionHandler {
	return &CreateTransactionHandler{Operator: op}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction",
		Summary:     "Create transaction",
		Description: "Resolves the budget period for the month and records the transaction against it.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	draft, err := parseDraft(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Draft: draft, IncludeMonth: input.IncludeMonth}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to create transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionID", action.Result.ID.String())
		logData.AddData("periodID", nullUUIDString(action.Result.PeriodID))
	}

	return &CreateTransactionOutput{Status: http.StatusCreated, Body: createdResponse(action.Result, action.Month)}, nil
}

func createdResponse(tx *service.Transaction, month *service.BudgetSnapshot) CreateTransactionResponse {
	resp := CreateTransactionResponse{Transaction: toResponse(*tx)}
	if month == nil {
		return resp
	}
	for _, item := range month.Transactions.Items() {
		resp.MonthTransactions = append(resp.MonthTransactions, toResponse(item))
	}
	return resp
}
