package cli

import (
	"context"
	"flag"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type bypassCmd struct {
	app         *App
	user        string
	profile     string
	month       int
	year        int
	txType      string
	category    string
	amount      string
	description string
	date        string
	paymentType string
}

func (*bypassCmd) Name() string     { return "bypass" }
func (*bypassCmd) Synopsis() string { return "insert a transaction without binding it to a budget period" }
func (*bypassCmd) Usage() string {
	return `bypass -user <uuid> -profile <name> -month <m> -year <y> -type <type> -category <category> -amount <decimal> [-description <text>] [-date <yyyy-mm-dd>] [-payment <type>]

  Emergency path for when period resolution keeps failing. The transaction is
  stored with no budget period; run resolve afterwards to rebuild the period.
`
}

func (c *bypassCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User UUID")
	f.StringVar(&c.profile, "profile", "", "Budget profile name")
	f.IntVar(&c.month, "month", 0, "Budget month")
	f.IntVar(&c.year, "year", 0, "Budget year")
	f.StringVar(&c.txType, "type", string(service.TransactionTypeExpense), "Transaction type")
	f.StringVar(&c.category, "category", "", "Budget category (need, want, savings, investments, unplanned)")
	f.StringVar(&c.amount, "amount", "", "Non-negative decimal amount")
	f.StringVar(&c.description, "description", "", "Description")
	f.StringVar(&c.date, "date", "", "Transaction date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.paymentType, "payment", "", "Payment method")
}

func (c *bypassCmd) draft() (service.TransactionDraft, error) {
	userID, err := uuid.FromString(c.user)
	if err != nil {
		return service.TransactionDraft{}, err
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return service.TransactionDraft{}, err
	}
	draft := service.TransactionDraft{
		Owner:       service.Owner{UserID: userID, ProfileName: c.profile},
		Month:       c.month,
		Year:        c.year,
		Type:        service.TransactionType(c.txType),
		Category:    service.Category(c.category),
		Amount:      amount,
		Description: c.description,
		PaymentType: service.PaymentType(c.paymentType),
	}
	if c.date != "" {
		if draft.TransactionDate, err = time.Parse(time.DateOnly, c.date); err != nil {
			return service.TransactionDraft{}, err
		}
	}
	return draft, nil
}

func (c *bypassCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	draft, err := c.draft()
	if err != nil {
		return usageError(c.app.Err, "%v", err)
	}

	return c.app.run(ctx, c.Name(), func(svc *service.Service) (any, error) {
		return svc.Committer.CommitBypass(ctx, draft)
	})
}
