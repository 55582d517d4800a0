package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/memstore"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

type testEnv struct {
	svc   *Service
	mem   *memstore.Store
	store *storage.Storage
	hook  *test.Hook
}

// newTestEnv wires the services to a fresh in-memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, memstore.New())
}

func newTestEnvWithStore(t *testing.T, mem *memstore.Store) *testEnv {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	store := storage.NewMemoryStorage(mem)
	svc := NewService(store, Options{Logger: logger, Clock: fixedClock})
	return &testEnv{svc: svc, mem: mem, store: store, hook: hook}
}

// newMockPeriodResolver swaps the period table for a mock and keeps the other
// tables in memory.
func newMockPeriodResolver(t *testing.T) (*PeriodResolver, *sqlconfig.MockIPeriodTable, *memstore.Store, *test.Hook) {
	t.Helper()
	mem := memstore.New()
	store := storage.NewMemoryStorage(mem)
	periods := sqlconfig.NewMockIPeriodTable(t)
	store.Periods = periods
	logger, hook := test.NewNullLogger()
	return NewPeriodResolver(store, logger, fixedClock), periods, mem, hook
}

func newOwner() Owner {
	return Owner{UserID: uuid.Must(uuid.NewV4()), ProfileName: "Household"}
}

func periodRow(id, userID uuid.UUID, month, year string) *sqlconfig.BudgetPeriod {
	return &sqlconfig.BudgetPeriod{
		ID:       id,
		UserID:   userID,
		Month:    sql.NullString{String: month, Valid: month != ""},
		Year:     sql.NullString{String: year, Valid: year != ""},
		IsActive: true,
	}
}

func expenseDraft(owner Owner, month, year int, amount string) TransactionDraft {
	return TransactionDraft{
		Owner:       owner,
		Month:       month,
		Year:        year,
		Type:        TransactionTypeExpense,
		Category:    CategoryNeed,
		Amount:      decimal.RequireFromString(amount),
		Description: "Groceries",
		PaymentType: PaymentTypeCard,
	}
}

func hasMessage(hook *test.Hook, level logrus.Level, message string) bool {
	for _, entry := range hook.AllEntries() {
		if entry.Level == level && entry.Message == message {
			return true
		}
	}
	return false
}
