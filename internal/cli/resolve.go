package cli

import (
	"context"
	"flag"

	"github.com/gofrs/uuid/v5"
	"github.com/google/subcommands"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type resolveCmd struct {
	app   *App
	user  string
	month int
	year  int
}

type resolveResult struct {
	PeriodID  uuid.UUID
	Key       service.PeriodKey
	Corrected bool
}

func (*resolveCmd) Name() string     { return "resolve" }
func (*resolveCmd) Synopsis() string { return "find, create or repair the budget period of a month" }
func (*resolveCmd) Usage() string {
	return `resolve -user <uuid> -month <1-12> -year <yyyy>

  Resolves the budget period for a user and month, repairing a damaged row
  when needed, and prints the period id.
`
}

func (c *resolveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User UUID")
	f.IntVar(&c.month, "month", 0, "Budget month; out of range values fall back to the current month")
	f.IntVar(&c.year, "year", 0, "Budget year; out of range values fall back to the current year")
}

func (c *resolveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	userID, err := uuid.FromString(c.user)
	if err != nil {
		return usageError(c.app.Err, "-user must be a UUID: %v", err)
	}

	return c.app.run(ctx, c.Name(), func(svc *service.Service) (any, error) {
		id, err := svc.Resolver.Resolve(ctx, userID, c.month, c.year)
		if err != nil {
			return nil, err
		}
		key, corrected := svc.Resolver.NormalizeKey(userID, c.month, c.year)
		return resolveResult{PeriodID: id, Key: key, Corrected: corrected}, nil
	})
}
