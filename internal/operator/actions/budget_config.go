package actions

import (
	"context"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type SaveBudgetConfig struct {
	Owner service.Owner
	Month int
	Year  int
	Input service.BudgetConfigInput

	Result *service.BudgetConfig
	IAction
}

func (s *SaveBudgetConfig) Perform(ctx context.Context, svc *service.Service) error {
	cfg, err := svc.Budget.SaveBudgetConfig(ctx, s.Owner, s.Month, s.Year, s.Input)
	if err != nil {
		return err
	}

	s.Result = cfg
	return nil
}

type DeleteBudgetConfig struct {
	Owner service.Owner
	Month int
	Year  int
	IAction
}

func (d *DeleteBudgetConfig) Perform(ctx context.Context, svc *service.Service) error {
	return svc.Budget.DeleteBudgetConfig(ctx, d.Owner, d.Month, d.Year)
}
