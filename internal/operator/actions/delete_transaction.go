package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type DeleteTransaction struct {
	Owner         service.Owner
	TransactionID uuid.UUID
	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, svc *service.Service) error {
	return svc.Budget.DeleteTransaction(ctx, d.Owner, d.TransactionID)
}

// DeleteAllTransactions soft-deletes every live transaction of a budget month.
type DeleteAllTransactions struct {
	Owner service.Owner
	Month int
	Year  int

	Deleted int64
	IAction
}

func (d *DeleteAllTransactions) Perform(ctx context.Context, svc *service.Service) error {
	n, err := svc.Budget.DeleteAllTransactions(ctx, d.Owner, d.Month, d.Year)
	if err != nil {
		return err
	}

	d.Deleted = n
	return nil
}
