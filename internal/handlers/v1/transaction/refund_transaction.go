package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type RefundTransactionBody struct {
	UserID      string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
	ProfileName string `json:"profileName" required:"true" minLength:"1" doc:"Budget profile"`
	Amount      string `json:"amount" required:"true" doc:"Refund amount, at most the original amount"`
	Reason      string `json:"reason" required:"true" minLength:"1" doc:"Why the refund was issued"`
	Category    string `json:"category,omitempty" enum:"need,want,savings,investments,unplanned" doc:"Category of the refund, defaults to the original's"`
}

type RefundTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"UUID of the transaction to refund"`
	Body RefundTransactionBody
}

type RefundTransactionResponse struct {
	Refund   Transaction `json:"refund" doc:"The refund transaction"`
	Original Transaction `json:"original" doc:"The original transaction after its status change"`
}

type RefundTransactionOutput struct {
	Status int
	Body   RefundTransactionResponse
}

// RefundTransactionHandler handles POST /v1/transaction/{id}/refund.
type RefundTransactionHandler struct {
	Operator actionProcessor
}

func NewRefundTransactionHandler(op actionProcessor) *RefundTransactionHandler {
	return &RefundTransactionHandler{Operator: op}
}

func (h *RefundTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "refund-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/refund",
		Summary:     "Refund transaction",
		Description: "Records a refund in the original's budget month and marks the original refunded or partially refunded.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseRefundInput(input *RefundTransactionInput) (service.RefundRequest, error) {
	originalID, err := uuid.FromString(input.ID)
	if err != nil {
		return service.RefundRequest{}, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return service.RefundRequest{}, err
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.RefundRequest{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}
	return service.RefundRequest{
		Owner:      owner,
		OriginalID: originalID,
		Amount:     amount,
		Reason:     input.Body.Reason,
		Category:   service.Category(input.Body.Category),
	}, nil
}

func (h *RefundTransactionHandler) handle(ctx context.Context, input *RefundTransactionInput) (*RefundTransactionOutput, error) {
	req, err := parseRefundInput(input)
	if err != nil {
		return nil, err
	}

	action := &actions.RefundTransaction{Request: req}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to refund transaction", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("refundID", action.Result.Refund.ID.String())
		logData.AddData("originalStatus", string(action.Result.Original.Status))
	}

	return &RefundTransactionOutput{
		Status: http.StatusCreated,
		Body: RefundTransactionResponse{
			Refund:   toResponse(action.Result.Refund),
			Original: toResponse(action.Result.Original),
		},
	}, nil
}
