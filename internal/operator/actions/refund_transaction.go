package actions

import (
	"context"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type RefundTransaction struct {
	Request service.RefundRequest

	Result *service.RefundResult
	IAction
}

func (r *RefundTransaction) Perform(ctx context.Context, svc *service.Service) error {
	result, err := svc.Refunds.Refund(ctx, r.Request)
	if err != nil {
		return err
	}

	r.Result = result
	return nil
}
