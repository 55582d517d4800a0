package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type WipeUserData struct {
	UserID uuid.UUID

	Result *service.WipeReport
	IAction
}

func (w *WipeUserData) Perform(ctx context.Context, svc *service.Service) error {
	report, err := svc.Budget.WipeUserData(ctx, w.UserID)
	if err != nil {
		return err
	}

	w.Result = report
	return nil
}
