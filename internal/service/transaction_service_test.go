package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/memstore"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

func newTestService(t *testing.T) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	mockTable := sqlconfig.NewMockITransactionTable(t)
	store := storage.NewMemoryStorage(memstore.New())
	store.Transactions = mockTable
	logger, _ := test.NewNullLogger()
	svc := NewTransactionService(store, NewPeriodResolver(store, logger, fixedClock))
	return svc, mockTable
}

func makeStorageRows(owner Owner, n int, createdAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          owner.UserID,
			ProfileName:     owner.ProfileName,
			BudgetMonth:     6,
			BudgetYear:      2025,
			Type:            string(TransactionTypeExpense),
			Category:        string(CategoryNeed),
			Amount:          decimal.RequireFromString("5.00"),
			TransactionDate: createdAt,
			Status:          string(StatusActive),
			CreatedAt:       createdAt.Add(time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), newOwner(), 6, 2025, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockTable := newTestService(t)
	owner := newOwner()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(owner, 2, now)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == defaultLimit+1 &&
			f.Offset == 0 &&
			f.MaxCreationTime == nil &&
			f.Scope.Owner.UserID == owner.UserID &&
			f.Scope.Owner.ProfileName == owner.ProfileName &&
			f.Scope.Month == 6 && f.Scope.Year == 2025
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), owner, 6, 2025, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.Equal(t, owner, tx.Owner)
	assert.Equal(t, CategoryNeed, tx.Category)
	assert.True(t, rows[0].Amount.Equal(tx.Amount))
	assert.Equal(t, rows[0].TransactionDate, tx.TransactionDate)
	assert.Equal(t, rows[0].CreatedAt, tx.CreatedAt)
}

func TestListTransactions_ExactlyOnePage(t *testing.T) {
	svc, mockTable := newTestService(t)
	owner := newOwner()

	rows := makeStorageRows(owner, defaultLimit, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), owner, 6, 2025, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit)
	assert.Nil(t, nextCursor, "a full page with nothing after it has no next cursor")
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, mockTable := newTestService(t)
	owner := newOwner()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(owner, defaultLimit+1, now)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), owner, 6, 2025, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, rows[defaultLimit-1].CreatedAt, nextCursor.MaxCreationTime, "latest creation on the page")
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, mockTable := newTestService(t)
	owner := newOwner()

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rowTime := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(owner, 3, rowTime) // limit=2, returns 3 → has next page

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 3 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), owner, 6, 2025, &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestListTransactions_InvalidMonthUsesCurrent(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Scope.Month == 6 && f.Scope.Year == 2025
	})).Return(nil, nil)

	_, _, err := svc.ListTransactions(context.Background(), newOwner(), 14, 2025, nil)

	assert.NoError(t, err)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), newOwner(), 6, 2025, nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_AgainstMemoryStore(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()

	for day := 1; day <= 5; day++ {
		draft := expenseDraft(owner, 6, 2025, "1")
		draft.TransactionDate = time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
		_, err := env.svc.Committer.AddTransaction(ctx, draft)
		assert.NoError(t, err)
	}

	first, cursor, err := env.svc.Transaction.ListTransactions(ctx, owner, 6, 2025, &TransactionCursor{Limit: 2, MaxCreationTime: time.Now().Add(time.Hour)})
	assert.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Equal(t, 5, first[0].TransactionDate.Day(), "newest first")

	second, cursor, err := env.svc.Transaction.ListTransactions(ctx, owner, 6, 2025, cursor)
	assert.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, 3, second[0].TransactionDate.Day())

	last, cursor, err := env.svc.Transaction.ListTransactions(ctx, owner, 6, 2025, cursor)
	assert.NoError(t, err)
	assert.Len(t, last, 1)
	assert.Nil(t, cursor)
}
