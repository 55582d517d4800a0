package cli

import (
	"context"
	"flag"

	"github.com/gofrs/uuid/v5"
	"github.com/google/subcommands"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type wipeCmd struct {
	app     *App
	user    string
	confirm bool
}

func (*wipeCmd) Name() string     { return "wipe" }
func (*wipeCmd) Synopsis() string { return "delete every row belonging to a user" }
func (*wipeCmd) Usage() string {
	return `wipe -user <uuid> -confirm

  Deletes the user's transactions, portfolios, configs and periods in one
  database transaction. Optional tables missing from the schema are skipped.
`
}

func (c *wipeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User UUID")
	f.BoolVar(&c.confirm, "confirm", false, "Required; there is no undo")
}

func (c *wipeCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.confirm {
		return usageError(c.app.Err, "-confirm is required to wipe user data")
	}
	userID, err := uuid.FromString(c.user)
	if err != nil {
		return usageError(c.app.Err, "-user must be a UUID: %v", err)
	}

	return c.app.run(ctx, c.Name(), func(svc *service.Service) (any, error) {
		return svc.Budget.WipeUserData(ctx, userID)
	})
}
