package budget

import (
	"context"
	"net/http"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type SaveConfigBody struct {
	PeriodBody
	MonthlySalary         string `json:"monthlySalary" required:"true" doc:"Monthly salary"`
	BudgetPercentage      string `json:"budgetPercentage,omitempty" doc:"Share of the salary that is budgeted, defaults to 100"`
	AllocationNeed        string `json:"allocationNeed,omitempty" doc:"Percentage allocated to needs"`
	AllocationWant        string `json:"allocationWant,omitempty" doc:"Percentage allocated to wants"`
	AllocationSavings     string `json:"allocationSavings,omitempty" doc:"Percentage allocated to savings"`
	AllocationInvestments string `json:"allocationInvestments,omitempty" doc:"Percentage allocated to investments"`
}

type SaveConfigInput struct {
	Body SaveConfigBody
}

type SaveConfigOutput struct {
	Body BudgetConfig
}

// SaveConfigHandler handles PUT /v1/budget/config.
type SaveConfigHandler struct {
	Operator actionProcessor
}

func NewSaveConfigHandler(op actionProcessor) *SaveConfigHandler {
	return &SaveConfigHandler{Operator: op}
}

func (h *SaveConfigHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "save-budget-config",
		Method:      http.MethodPut,
		Path:        "/v1/budget/config",
		Summary:     "Save budget config",
		Description: "Creates or replaces the budget config of a budget month.",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func parseDecimal(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return d, nil
}

func parseConfigInput(body SaveConfigBody) (service.BudgetConfigInput, error) {
	var input service.BudgetConfigInput
	var err error

	fields := []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"monthlySalary", body.MonthlySalary, &input.MonthlySalary},
		{"allocationNeed", body.AllocationNeed, &input.AllocationNeed},
		{"allocationWant", body.AllocationWant, &input.AllocationWant},
		{"allocationSavings", body.AllocationSavings, &input.AllocationSavings},
		{"allocationInvestments", body.AllocationInvestments, &input.AllocationInvestments},
	}
	for _, f := range fields {
		if *f.dst, err = parseDecimal(f.name, f.value); err != nil {
			return service.BudgetConfigInput{}, err
		}
	}

	if body.BudgetPercentage != "" {
		pct, err := parseDecimal("budgetPercentage", body.BudgetPercentage)
		if err != nil {
			return service.BudgetConfigInput{}, err
		}
		input.BudgetPercentage = omit.From(pct)
	}
	return input, nil
}

func (h *SaveConfigHandler) handle(ctx context.Context, input *SaveConfigInput) (*SaveConfigOutput, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}
	configInput, err := parseConfigInput(input.Body)
	if err != nil {
		return nil, err
	}

	action := &actions.SaveBudgetConfig{
		Owner: owner,
		Month: input.Body.Month,
		Year:  input.Body.Year,
		Input: configInput,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to save budget config", err)
	}

	return &SaveConfigOutput{Body: *configResponse(action.Result)}, nil
}

type DeleteConfigInput struct {
	Body PeriodBody
}

type DeleteConfigOutput struct {
	Status int
}

// DeleteConfigHandler handles POST /v1/budget/config/delete.
type DeleteConfigHandler struct {
	Operator actionProcessor
}

func NewDeleteConfigHandler(op actionProcessor) *DeleteConfigHandler {
	return &DeleteConfigHandler{Operator: op}
}

func (h *DeleteConfigHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget-config",
		Method:      http.MethodPost,
		Path:        "/v1/budget/config/delete",
		Summary:     "Delete budget config",
		Tags:        []string{"Budget"},
	}, h.handle)
}

func (h *DeleteConfigHandler) handle(ctx context.Context, input *DeleteConfigInput) (*DeleteConfigOutput, error) {
	owner, err := respond.Owner(input.Body.UserID, input.Body.ProfileName)
	if err != nil {
		return nil, err
	}

	err = h.Operator.Process(ctx, &actions.DeleteBudgetConfig{Owner: owner, Month: input.Body.Month, Year: input.Body.Year})
	if err != nil {
		return nil, respond.Error(ctx, "failed to delete budget config", err)
	}
	return &DeleteConfigOutput{Status: http.StatusNoContent}, nil
}
