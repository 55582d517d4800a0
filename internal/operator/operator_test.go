package operator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/memstore"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// blockingAction waits until released or cancelled.
type blockingAction struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAction) Perform(ctx context.Context, _ *service.Service) error {
	close(b.started)
	select {
	case <-b.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func newTestDelegator(t *testing.T, workers int) (*OperatorDelegator, *memstore.Store, *test.Hook) {
	t.Helper()
	mem := memstore.New()
	logger, hook := test.NewNullLogger()
	svc := service.NewService(storage.NewMemoryStorage(mem), service.Options{Logger: logger})
	d := NewOperatorDelegator(svc, logger, workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d, mem, hook
}

func TestProcess_CreateTransaction(t *testing.T) {
	d, mem, _ := newTestDelegator(t, 2)
	owner := service.Owner{UserID: uuid.Must(uuid.NewV4()), ProfileName: "Household"}

	action := &actions.CreateTransaction{Draft: service.TransactionDraft{
		Owner:    owner,
		Month:    6,
		Year:     2025,
		Type:     service.TransactionTypeExpense,
		Category: service.CategoryNeed,
		Amount:   decimal.NewFromInt(30),
	}}
	err := d.Process(context.Background(), action)

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	assert.True(t, action.Result.PeriodID.Valid)
	assert.Equal(t, 1, mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
}

func TestProcess_CreateTransactionIncludesMonth(t *testing.T) {
	d, _, _ := newTestDelegator(t, 1)
	owner := service.Owner{UserID: uuid.Must(uuid.NewV4()), ProfileName: "Household"}
	draft := service.TransactionDraft{
		Owner:           owner,
		Month:           6,
		Year:            2025,
		Type:            service.TransactionTypeExpense,
		Category:        service.CategoryNeed,
		Amount:          decimal.NewFromInt(30),
		TransactionDate: time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, d.Process(context.Background(), &actions.CreateTransaction{Draft: draft}))

	draft.TransactionDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	action := &actions.BypassTransaction{Draft: draft, IncludeMonth: true}
	require.NoError(t, d.Process(context.Background(), action))

	require.NotNil(t, action.Month)
	items := action.Month.Transactions.Items()
	require.Len(t, items, 2)
	assert.Equal(t, action.Result.ID, items[0].ID, "new record first even though it is dated earlier")
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d, _, hook := newTestDelegator(t, 1)

	action := &actions.CreateTransaction{Draft: service.TransactionDraft{}}
	err := d.Process(context.Background(), action)

	var validationErr *service.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Nil(t, action.Result)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "Operator.processItem.actionFailed", hook.LastEntry().Message)
}

func TestProcess_CancelledBeforeEnqueue(t *testing.T) {
	d, mem, _ := newTestDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	userID := uuid.Must(uuid.NewV4())

	err := d.Process(ctx, &actions.ResolvePeriod{UserID: userID, Month: 6, Year: 2025})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, mem.CountRows(sqlconfig.TableBudgetPeriods, userID))
}

func TestProcess_ReturnsWhenContextExpires(t *testing.T) {
	d, _, _ := newTestDelegator(t, 1)
	action := &blockingAction{started: make(chan struct{}), release: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, action)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	<-action.started
}

func TestProcess_WorkersRunConcurrently(t *testing.T) {
	d, _, _ := newTestDelegator(t, 2)
	first := &blockingAction{started: make(chan struct{}), release: make(chan struct{})}

	done := make(chan error, 1)
	go func() { done <- d.Process(context.Background(), first) }()
	<-first.started

	// The second worker is free while the first is blocked.
	err := d.Process(context.Background(), &actions.ResolvePeriod{UserID: uuid.Must(uuid.NewV4()), Month: 1, Year: 2026})
	assert.NoError(t, err)

	close(first.release)
	assert.NoError(t, <-done)
}

func TestProcess_AfterStop(t *testing.T) {
	d, mem, _ := newTestDelegator(t, 1)
	d.Stop()
	d.Stop()
	userID := uuid.Must(uuid.NewV4())

	err := d.Process(context.Background(), &actions.ResolvePeriod{UserID: userID, Month: 6, Year: 2025})

	assert.ErrorIs(t, err, ErrStopped)
	assert.Zero(t, mem.CountRows(sqlconfig.TableBudgetPeriods, userID))
}

func TestStop_WhileCallersAreSending(t *testing.T) {
	d, _, _ := newTestDelegator(t, 2)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- d.Process(context.Background(), &actions.ResolvePeriod{UserID: uuid.Must(uuid.NewV4()), Month: 3, Year: 2026})
		}()
	}
	d.Stop()
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, ErrStopped)
		}
	}
}

func TestNewOperatorDelegator_AtLeastOneWorker(t *testing.T) {
	logger, _ := test.NewNullLogger()
	d := NewOperatorDelegator(nil, logger, 0)
	assert.Equal(t, 1, d.numWorkers)
}
