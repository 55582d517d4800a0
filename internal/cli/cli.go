// Package cli implements the budgetctl recovery commands. Each command works
// directly against the services, without the HTTP server or operator pool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/config"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Opener returns the services a command runs against and a func releasing them.
type Opener func(ctx context.Context) (*service.Service, func() error, error)

// App is shared by every command.
type App struct {
	Open Opener
	Out  io.Writer
	Err  io.Writer
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Register adds the commands to c.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&resolveCmd{app: app}, "periods")
	c.Register(&bypassCmd{app: app}, "transactions")
	c.Register(&refundCmd{app: app}, "transactions")
	c.Register(&wipeCmd{app: app}, "admin")
}

// EnvOpener opens the storage backend named by the environment.
func EnvOpener(ctx context.Context) (*service.Service, func() error, error) {
	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return nil, nil, err
	}
	log := logging.SetupLogging(env.LogLevel)
	log.SetOutput(os.Stderr)

	store, err := storage.New(ctx, env)
	if err != nil {
		return nil, nil, err
	}
	svc := service.NewService(store, service.Options{
		Logger: log,
		RetryPolicy: service.RetryPolicy{
			MaxAttempts: env.CommitMaxAttempts,
			Retryable:   sqlconfig.IsStalePeriodViolation,
		},
	})
	return svc, store.Close, nil
}

// run opens the services, calls fn and reports its outcome.
func (a *App) run(ctx context.Context, name string, fn func(svc *service.Service) (any, error)) subcommands.ExitStatus {
	svc, closeFn, err := a.Open(ctx)
	if err != nil {
		fmt.Fprintf(a.Err, "%s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer func() {
		if err := closeFn(); err != nil {
			logrus.WithError(err).Warn("cli.close")
		}
	}()

	result, err := fn(svc)
	if err != nil {
		fmt.Fprintf(a.Err, "%s: %v\n", name, err)
		for k, v := range service.ErrorFields(err) {
			fmt.Fprintf(a.Err, "  %s: %v\n", k, v)
		}
		return subcommands.ExitFailure
	}
	dumper.Fdump(a.Out, result)
	return subcommands.ExitSuccess
}

func usageError(w io.Writer, format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(w, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
