package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
)

type DeactivatePortfolioInput struct {
	ID   string `path:"id" format:"uuid" doc:"Portfolio UUID"`
	Body struct {
		UserID      string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
		ProfileName string `json:"profileName" required:"true" minLength:"1" doc:"Budget profile"`
	}
}

type PortfolioOutput struct {
	Status int
}

// DeactivatePortfolioHandler handles POST /v1/budget/portfolio/{id}/deactivate.
type DeactivatePortfolioHandler struct {
	Operator actionProcessor
}

func NewDeactivatePortfolioHandler(op actionProcessor) *DeactivatePortfolioHandler {
	return &DeactivatePortfolioHandler{Operator: op}
}

func (h *DeactivatePortfolioHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "deactivate-portfolio",
		Method:      http.MethodPost,
		Path:        "/v1/budget/portfolio/{id}/deactivate",
		Summary:     "Deactivate portfolio",
		Description: "Hides a portfolio from snapshots without deleting it.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *DeactivatePortfolioHandler) handle(ctx context.Context, input *DeactivatePortfolioInput) (*PortfolioOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid portfolio id", err)
	}
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, &actions.DeactivatePortfolio{Owner: owner, PortfolioID: id}); err != nil {
		return nil, respond.Error(ctx, "failed to deactivate portfolio", err)
	}
	return &PortfolioOutput{Status: http.StatusNoContent}, nil
}

type DeleteAllPortfoliosInput struct {
	Body PeriodBody
}

// DeleteAllPortfoliosHandler handles POST /v1/budget/portfolio/delete-all.
type DeleteAllPortfoliosHandler struct {
	Operator actionProcessor
}

func NewDeleteAllPortfoliosHandler(op actionProcessor) *DeleteAllPortfoliosHandler {
	return &DeleteAllPortfoliosHandler{Operator: op}
}

func (h *DeleteAllPortfoliosHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-all-portfolios",
		Method:      http.MethodPost,
		Path:        "/v1/budget/portfolio/delete-all",
		Summary:     "Delete all portfolios",
		Description: "Hard deletes the funds, categories and portfolios of a budget month.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *DeleteAllPortfoliosHandler) handle(ctx context.Context, input *DeleteAllPortfoliosInput) (*PortfolioOutput, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}

	err = h.Operator.Process(ctx, &actions.DeleteAllPortfolios{Owner: owner, Month: input.Body.Month, Year: input.Body.Year})
	if err != nil {
		return nil, respond.Error(ctx, "failed to delete portfolios", err)
	}
	return &PortfolioOutput{Status: http.StatusNoContent}, nil
}
