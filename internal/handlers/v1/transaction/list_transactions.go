package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// ListTransactionsCursor is echoed back by clients to fetch the next page.
// MaxCreationTime is fixed by the first page so rows created later do not
// shift the offsets.
type ListTransactionsCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Offset of the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Newest createdAt included in the listing"`
}

type ListTransactionsBody struct {
	PeriodBody
	Cursor *ListTransactionsCursor `json:"cursor,omitempty" doc:"Cursor from a previous page"`
}

type ListTransactionsInput struct {
	Body ListTransactionsBody
}

type ListTransactionsResponseBody struct {
	Count        int                     `json:"count" doc:"Number of transactions on this page"`
	Transactions []Transaction           `json:"transactions" doc:"Live transactions of the month, newest first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Absent on the last page"`
}

type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	ListTransactions(ctx context.Context, owner service.Owner, month, year int, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list. Reads go straight
// to the service rather than through the operator queue.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Pages through the live transactions of one budget month, newest first.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (service.Owner, *service.TransactionCursor, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return service.Owner{}, nil, err
	}
	cursor, err := cursorFromBody(input.Body.Cursor)
	if err != nil {
		return service.Owner{}, nil, err
	}
	return owner, cursor, nil
}

// cursorFromBody returns nil for a first page, which gets the service's
// default limit.
func cursorFromBody(c *ListTransactionsCursor) (*service.TransactionCursor, error) {
	if c == nil {
		return nil, nil
	}
	if c.Position < 0 {
		return nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}
	maxCreationTime, err := time.Parse(time.RFC3339, c.MaxCreationTime)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", err)
	}
	return &service.TransactionCursor{
		Position:        c.Position,
		Limit:           c.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func cursorBody(c *service.TransactionCursor) *ListTransactionsCursor {
	if c == nil {
		return nil
	}
	return &ListTransactionsCursor{
		Position:        c.Position,
		Limit:           c.Limit,
		MaxCreationTime: c.MaxCreationTime.Format(time.RFC3339),
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	owner, cursor, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, next, err := h.TransactionService.ListTransactions(ctx, owner, input.Body.Month, input.Body.Year, cursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.Error(ctx, "failed to list transactions", err)
	}

	body := ListTransactionsResponseBody{
		Count:        len(page),
		Transactions: make([]Transaction, 0, len(page)),
		NextCursor:   cursorBody(next),
	}
	for _, tx := range page {
		body.Transactions = append(body.Transactions, toResponse(tx))
	}

	if logData != nil {
		logData.AddData("transactionCount", body.Count)
		logData.AddData("hasNextPage", next != nil)
	}
	return &ListTransactionsOutput{Body: body}, nil
}
