package actions

import (
	"context"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

// CreateTransaction resolves the draft's budget period and commits the draft
// against it. With IncludeMonth set, Month holds the budget month as read
// before the commit with the new record prepended.
type CreateTransaction struct {
	Draft        service.TransactionDraft
	IncludeMonth bool

	Result *service.Transaction
	Month  *service.BudgetSnapshot
	IAction
}

func (c *CreateTransaction) Perform(ctx context.Context, svc *service.Service) error {
	tx, month, err := commitWithMonth(ctx, svc, c.Draft, c.IncludeMonth, svc.Committer.AddTransaction)
	if err != nil {
		return err
	}

	c.Result = tx
	c.Month = month
	return nil
}

// BypassTransaction inserts the draft with no period reference.
type BypassTransaction struct {
	Draft        service.TransactionDraft
	IncludeMonth bool

	Result *service.Transaction
	Month  *service.BudgetSnapshot
	IAction
}

func (b *BypassTransaction) Perform(ctx context.Context, svc *service.Service) error {
	tx, month, err := commitWithMonth(ctx, svc, b.Draft, b.IncludeMonth, svc.Committer.CommitBypass)
	if err != nil {
		return err
	}

	b.Result = tx
	b.Month = month
	return nil
}

type commitFunc func(ctx context.Context, draft service.TransactionDraft) (*service.Transaction, error)

func commitWithMonth(ctx context.Context, svc *service.Service, draft service.TransactionDraft, includeMonth bool, commit commitFunc) (*service.Transaction, *service.BudgetSnapshot, error) {
	if !includeMonth {
		tx, err := commit(ctx, draft)
		return tx, nil, err
	}

	before, err := svc.Budget.Snapshot(ctx, draft.Owner, draft.Month, draft.Year)
	if err != nil {
		return nil, nil, err
	}
	tx, err := commit(ctx, draft)
	if err != nil {
		return nil, nil, err
	}
	after := before.WithTransaction(*tx)
	return tx, &after, nil
}
