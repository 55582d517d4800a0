package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

// ResolvePeriod finds or creates the budget period for a user and month. The
// resolved key may differ from the requested one when the month or year was
// out of range.
type ResolvePeriod struct {
	UserID uuid.UUID
	Month  int
	Year   int

	PeriodID uuid.UUID
	Key      service.PeriodKey
	IAction
}

func (r *ResolvePeriod) Perform(ctx context.Context, svc *service.Service) error {
	id, err := svc.Resolver.Resolve(ctx, r.UserID, r.Month, r.Year)
	if err != nil {
		return err
	}

	r.PeriodID = id
	r.Key, _ = svc.Resolver.NormalizeKey(r.UserID, r.Month, r.Year)
	return nil
}
