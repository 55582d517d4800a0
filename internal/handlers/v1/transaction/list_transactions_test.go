package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, owner service.Owner, month, year int, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, owner, month, year, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

var listOwner = service.Owner{UserID: uuid.Must(uuid.NewV4()), ProfileName: "Household"}

func listBody(cursor *ListTransactionsCursor) ListTransactionsBody {
	return ListTransactionsBody{
		PeriodBody: PeriodBody{
			UserID:      listOwner.UserID.String(),
			ProfileName: listOwner.ProfileName,
			Month:       6,
			Year:        2025,
		},
		Cursor: cursor,
	}
}

func postList(t *testing.T, svc transactionLister, body ListTransactionsBody) (int, ListTransactionsResponseBody) {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)

	resp := api.Post("/v1/transaction/list", body)
	var out ListTransactionsResponseBody
	if resp.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.Code, out
}

func TestParseListTransactionsInput(t *testing.T) {
	pinned := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(b *ListTransactionsBody)
		want    *service.TransactionCursor
		wantErr bool
	}{
		{
			name: "first page",
		},
		{
			name: "cursor",
			mutate: func(b *ListTransactionsBody) {
				b.Cursor = &ListTransactionsCursor{Position: 40, Limit: 10, MaxCreationTime: pinned.Format(time.RFC3339)}
			},
			want: &service.TransactionCursor{Position: 40, Limit: 10, MaxCreationTime: pinned},
		},
		{
			name: "unparseable maxCreationTime",
			mutate: func(b *ListTransactionsBody) {
				b.Cursor = &ListTransactionsCursor{Limit: 10, MaxCreationTime: "yesterday"}
			},
			wantErr: true,
		},
		{
			name: "negative position",
			mutate: func(b *ListTransactionsBody) {
				b.Cursor = &ListTransactionsCursor{Position: -1, Limit: 10, MaxCreationTime: pinned.Format(time.RFC3339)}
			},
			wantErr: true,
		},
		{
			name:    "bad user id",
			mutate:  func(b *ListTransactionsBody) { b.UserID = "user-1" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &ListTransactionsInput{Body: listBody(nil)}
			if tt.mutate != nil {
				tt.mutate(&input.Body)
			}

			owner, cursor, err := parseListTransactionsInput(input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, listOwner, owner)
			assert.Equal(t, tt.want, cursor)
		})
	}
}

func TestHTTP_ListTransactions_LastPage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	periodID := uuid.Must(uuid.NewV4())
	coffee := service.Transaction{
		ID:              uuid.Must(uuid.NewV4()),
		Owner:           listOwner,
		PeriodID:        uuid.NullUUID{UUID: periodID, Valid: true},
		Month:           6,
		Year:            2025,
		Type:            service.TransactionTypeExpense,
		Category:        service.CategoryWant,
		Amount:          decimal.RequireFromString("10.00"),
		Description:     "Coffee",
		TransactionDate: now,
		Status:          service.StatusActive,
		CreatedAt:       now,
	}

	lister := new(mockTransactionLister)
	lister.On("ListTransactions", mock.Anything, listOwner, 6, 2025, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{coffee}, (*service.TransactionCursor)(nil), nil)

	code, body := postList(t, lister, listBody(nil))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Transactions, 1)
	got := body.Transactions[0]
	assert.Equal(t, coffee.ID.String(), got.ID)
	assert.Equal(t, periodID.String(), got.PeriodID)
	assert.Equal(t, "10", got.Amount)
	assert.Equal(t, "want", got.Category)
	assert.Nil(t, body.NextCursor)
	lister.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ReturnsNextCursor(t *testing.T) {
	pinned := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	page := []service.Transaction{
		{ID: uuid.Must(uuid.NewV4()), Owner: listOwner, Amount: decimal.NewFromInt(5), TransactionDate: pinned, CreatedAt: pinned},
		{ID: uuid.Must(uuid.NewV4()), Owner: listOwner, Amount: decimal.NewFromInt(7), TransactionDate: pinned, CreatedAt: pinned},
	}

	lister := new(mockTransactionLister)
	lister.On("ListTransactions", mock.Anything, listOwner, 6, 2025, (*service.TransactionCursor)(nil)).
		Return(page, &service.TransactionCursor{Position: 2, Limit: 2, MaxCreationTime: pinned}, nil)

	code, body := postList(t, lister, listBody(nil))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, body.Count)
	assert.Equal(t, &ListTransactionsCursor{Position: 2, Limit: 2, MaxCreationTime: "2025-06-01T12:00:00Z"}, body.NextCursor)
}

func TestHTTP_ListTransactions_ForwardsCursor(t *testing.T) {
	pinned := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	lister := new(mockTransactionLister)
	lister.On("ListTransactions", mock.Anything, listOwner, 6, 2025, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c != nil && c.Position == 40 && c.Limit == 10 && c.MaxCreationTime.Equal(pinned)
	})).Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), nil)

	code, body := postList(t, lister, listBody(&ListTransactionsCursor{
		Position:        40,
		Limit:           10,
		MaxCreationTime: pinned.Format(time.RFC3339),
	}))

	assert.Equal(t, http.StatusOK, code)
	assert.Zero(t, body.Count)
	assert.Empty(t, body.Transactions)
	lister.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Errors(t *testing.T) {
	tests := []struct {
		name   string
		svcErr error
		body   ListTransactionsBody
		want   int
	}{
		{
			name:   "storage failure",
			svcErr: errors.New("database unavailable"),
			body:   listBody(nil),
			want:   http.StatusInternalServerError,
		},
		{
			name:   "deadline",
			svcErr: context.DeadlineExceeded,
			body:   listBody(nil),
			want:   http.StatusGatewayTimeout,
		},
		{
			name: "cursor limit out of range",
			body: listBody(&ListTransactionsCursor{Limit: 500, MaxCreationTime: "2025-05-01T10:00:00Z"}),
			want: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lister := new(mockTransactionLister)
			if tt.svcErr != nil {
				lister.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(([]service.Transaction)(nil), (*service.TransactionCursor)(nil), tt.svcErr)
			}

			code, _ := postList(t, lister, tt.body)

			assert.Equal(t, tt.want, code)
			if tt.svcErr == nil {
				lister.AssertNotCalled(t, "ListTransactions")
			}
		})
	}
}
