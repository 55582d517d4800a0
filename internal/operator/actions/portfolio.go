package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type DeactivatePortfolio struct {
	Owner       service.Owner
	PortfolioID uuid.UUID
	IAction
}

func (d *DeactivatePortfolio) Perform(ctx context.Context, svc *service.Service) error {
	return svc.Budget.DeactivatePortfolio(ctx, d.Owner, d.PortfolioID)
}

type DeleteAllPortfolios struct {
	Owner service.Owner
	Month int
	Year  int
	IAction
}

func (d *DeleteAllPortfolios) Perform(ctx context.Context, svc *service.Service) error {
	return svc.Budget.DeleteAllPortfolios(ctx, d.Owner, d.Month, d.Year)
}
