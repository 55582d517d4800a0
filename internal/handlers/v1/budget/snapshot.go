package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type SnapshotInput struct {
	Body PeriodBody
}

type SnapshotResponseBody struct {
	UserID       string               `json:"userID"`
	ProfileName  string               `json:"profileName"`
	Month        int                  `json:"month" doc:"Budget month after fallback"`
	Year         int                  `json:"year" doc:"Budget year after fallback"`
	Config       *BudgetConfig        `json:"config,omitempty" doc:"Budget config, absent when none is saved"`
	Portfolios   []Portfolio          `json:"portfolios" doc:"Active portfolios with their active categories and funds"`
	Transactions []TransactionSummary `json:"transactions" doc:"Live transactions, newest first"`
}

type SnapshotOutput struct {
	Body SnapshotResponseBody
}

// snapshotReader loads a budget month.
type snapshotReader interface {
	Snapshot(ctx context.Context, owner service.Owner, month, year int) (*service.BudgetSnapshot, error)
}

// SnapshotHandler handles POST /v1/budget/snapshot.
type SnapshotHandler struct {
	BudgetService snapshotReader
}

func NewSnapshotHandler(svc snapshotReader) *SnapshotHandler {
	return &SnapshotHandler{BudgetService: svc}
}

func (h *SnapshotHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-snapshot",
		Method:      http.MethodPost,
		Path:        "/v1/budget/snapshot",
		Summary:     "Budget snapshot",
		Description: "Returns the budget config, portfolio hierarchy and live transactions of one budget month.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *SnapshotHandler) handle(ctx context.Context, input *SnapshotInput) (*SnapshotOutput, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("snapshotMs")
	}
	snapshot, err := h.BudgetService.Snapshot(ctx, owner, input.Body.Month, input.Body.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, respond.Error(ctx, "failed to load budget snapshot", err)
	}

	body := SnapshotResponseBody{
		UserID:       owner.UserID.String(),
		ProfileName:  owner.ProfileName,
		Month:        snapshot.Month,
		Year:         snapshot.Year,
		Config:       configResponse(snapshot.Config),
		Portfolios:   make([]Portfolio, len(snapshot.Portfolios)),
		Transactions: make([]TransactionSummary, 0, snapshot.Transactions.Len()),
	}
	for i, p := range snapshot.Portfolios {
		body.Portfolios[i] = portfolioResponse(p)
	}
	for _, tx := range snapshot.Transactions.Items() {
		body.Transactions = append(body.Transactions, summaryResponse(tx))
	}

	if logData != nil {
		logData.AddData("transactionCount", len(body.Transactions))
	}
	return &SnapshotOutput{Body: body}, nil
}
