package actions

import (
	"context"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

// IAction is a unit of write work executed by an operator worker. Results are
// stored on the action itself once Perform returns nil.
type IAction interface {
	Perform(ctx context.Context, svc *service.Service) error
}
