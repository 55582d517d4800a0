package cli

import (
	"context"
	"flag"

	"github.com/gofrs/uuid/v5"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type refundCmd struct {
	app      *App
	user     string
	profile  string
	id       string
	amount   string
	reason   string
	category string
}

func (*refundCmd) Name() string     { return "refund" }
func (*refundCmd) Synopsis() string { return "record a refund against a transaction" }
func (*refundCmd) Usage() string {
	return `refund -user <uuid> -profile <name> -id <transaction uuid> -amount <decimal> -reason <text> [-category <category>]

  Records a refund transaction and marks the original refunded or partially
  refunded. When only the status update fails the refund id is printed so it
  can be reconciled by hand.
`
}

func (c *refundCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User UUID")
	f.StringVar(&c.profile, "profile", "", "Budget profile name")
	f.StringVar(&c.id, "id", "", "UUID of the transaction to refund")
	f.StringVar(&c.amount, "amount", "", "Refund amount")
	f.StringVar(&c.reason, "reason", "", "Why the refund was issued")
	f.StringVar(&c.category, "category", "", "Refund category, defaults to the original's")
}

func (c *refundCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	userID, err := uuid.FromString(c.user)
	if err != nil {
		return usageError(c.app.Err, "-user must be a UUID: %v", err)
	}
	originalID, err := uuid.FromString(c.id)
	if err != nil {
		return usageError(c.app.Err, "-id must be a UUID: %v", err)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return usageError(c.app.Err, "-amount must be a decimal: %v", err)
	}

	req := service.RefundRequest{
		Owner:      service.Owner{UserID: userID, ProfileName: c.profile},
		OriginalID: originalID,
		Amount:     amount,
		Reason:     c.reason,
		Category:   service.Category(c.category),
	}
	return c.app.run(ctx, c.Name(), func(svc *service.Service) (any, error) {
		return svc.Refunds.Refund(ctx, req)
	})
}
