package period

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
)

// actionProcessor runs write actions on the operator pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ResolvePeriodBody is the request body for resolving a budget period.
type ResolvePeriodBody struct {
	UserID string `json:"userID" required:"true" doc:"User UUID"`
	Month  int    `json:"month" doc:"Budget month 1-12; out of range values fall back to the current month"`
	Year   int    `json:"year" doc:"Budget year 2020-2050; out of range values fall back to the current year"`
}

type ResolvePeriodInput struct {
	Body ResolvePeriodBody
}

type ResolvePeriodResponse struct {
	PeriodID  string `json:"periodID" doc:"Budget period UUID"`
	Month     int    `json:"month" doc:"Resolved budget month"`
	Year      int    `json:"year" doc:"Resolved budget year"`
	Corrected bool   `json:"corrected" doc:"True when the requested month or year was replaced"`
}

type ResolvePeriodOutput struct {
	Body ResolvePeriodResponse
}

// ResolvePeriodHandler handles POST /v1/period/resolve.
type ResolvePeriodHandler struct {
	Operator actionProcessor
}

func NewResolvePeriodHandler(op actionProcessor) *ResolvePeriodHandler {
	return &ResolvePeriodHandler{Operator: op}
}

func (h *ResolvePeriodHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolve-period",
		Method:      http.MethodPost,
		Path:        "/v1/period/resolve",
		Summary:     "Resolve budget period",
		Description: "Finds or creates the budget period for a user and month, repairing it when damaged.",
		Tags:        []string{"Periods"},
	}, h.handle)
}

func (h *ResolvePeriodHandler) handle(ctx context.Context, input *ResolvePeriodInput) (*ResolvePeriodOutput, error) {
	userID, err := respond.UserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	action := &actions.ResolvePeriod{
		UserID: userID,
		Month:  input.Body.Month,
		Year:   input.Body.Year,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to resolve period", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("periodID", action.PeriodID.String())
	}

	return &ResolvePeriodOutput{Body: ResolvePeriodResponse{
		PeriodID:  action.PeriodID.String(),
		Month:     action.Key.Month,
		Year:      action.Key.Year,
		Corrected: action.Key.Month != input.Body.Month || action.Key.Year != input.Body.Year,
	}}, nil
}
