package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

func seedOriginal(t *testing.T, env *testEnv, owner Owner, amount string) *Transaction {
	t.Helper()
	draft := expenseDraft(owner, 3, 2025, amount)
	draft.Category = CategoryWant
	tx, err := env.svc.Committer.AddTransaction(context.Background(), draft)
	require.NoError(t, err)
	return tx
}

func TestRefund_Full(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	original := seedOriginal(t, env, owner, "120")

	result, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner:      owner,
		OriginalID: original.ID,
		Amount:     decimal.NewFromInt(120),
		Reason:     "damaged item",
	})

	require.NoError(t, err)
	refund := result.Refund
	assert.Equal(t, TransactionTypeRefund, refund.Type)
	assert.Equal(t, CategoryWant, refund.Category)
	assert.Equal(t, "Refund: damaged item", refund.Description)
	assert.Equal(t, 3, refund.Month, "refund lands in the original's budget month")
	assert.Equal(t, 2025, refund.Year)
	assert.Equal(t, original.PeriodID, refund.PeriodID)
	assert.Equal(t, uuid.NullUUID{UUID: original.ID, Valid: true}, refund.RefundFor)
	assert.Equal(t, StatusActive, refund.Status)

	assert.Equal(t, StatusRefunded, result.Original.Status)
	assert.Equal(t, uuid.NullUUID{UUID: refund.ID, Valid: true}, result.Original.OriginalTransactionID)
	assert.True(t, hasMessage(env.hook, logrus.InfoLevel, "RefundProcessor.Refund.complete"))
}

func TestRefund_PartialWithCategoryOverride(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	original := seedOriginal(t, env, owner, "120")

	result, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner:      owner,
		OriginalID: original.ID,
		Amount:     decimal.RequireFromString("20.50"),
		Reason:     "price match",
		Category:   CategoryNeed,
	})

	require.NoError(t, err)
	assert.Equal(t, CategoryNeed, result.Refund.Category)
	assert.Equal(t, StatusPartialRefund, result.Original.Status)
	assert.Equal(t, 2, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
}

func TestRefund_PartialRefundsAddUpToFullRefund(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	original := seedOriginal(t, env, owner, "100")

	first, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(40), Reason: "first"})
	require.NoError(t, err)
	assert.Equal(t, StatusPartialRefund, first.Original.Status)

	second, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(60), Reason: "rest"})
	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, second.Original.Status)
	assert.Equal(t, uuid.NullUUID{UUID: second.Refund.ID, Valid: true}, second.Original.OriginalTransactionID)

	// Both refunds keep their link back to the original.
	for _, id := range []uuid.UUID{first.Refund.ID, second.Refund.ID} {
		row, err := env.mem.Transactions().FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, uuid.NullUUID{UUID: original.ID, Valid: true}, row.RefundFor)
	}
}

func TestRefund_CumulativeAmountCannotExceedOriginal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	original := seedOriginal(t, env, owner, "100")

	_, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(40), Reason: "first"})
	require.NoError(t, err)

	_, err = env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(100), Reason: "again"})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "amount", validationErr.Field)
	assert.Contains(t, validationErr.Message, "60")
	assert.Equal(t, 2, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
	row, err := env.mem.Transactions().FindByID(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, string(StatusPartialRefund), row.Status)
}

func TestRefund_DeletedRefundNoLongerCounts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	original := seedOriginal(t, env, owner, "100")

	first, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(40), Reason: "mistake"})
	require.NoError(t, err)
	require.NoError(t, env.svc.Budget.DeleteTransaction(ctx, owner, first.Refund.ID))

	result, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(100), Reason: "full"})

	require.NoError(t, err)
	assert.Equal(t, StatusRefunded, result.Original.Status)
}

func TestRefund_RefundOfRefundRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner := newOwner()
	original := seedOriginal(t, env, owner, "100")
	first, err := env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(10), Reason: "first"})
	require.NoError(t, err)

	_, err = env.svc.Refunds.Refund(ctx, RefundRequest{Owner: owner, OriginalID: first.Refund.ID, Amount: decimal.NewFromInt(5), Reason: "undo"})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "originalID", validationErr.Field)
	assert.Equal(t, 2, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
}

func TestRefund_RefundLookupFailure(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	original := seedOriginal(t, env, owner, "50")
	env.mem.FailNext("transactions.List", errors.New("connection reset"))

	_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(5), Reason: "late",
	})

	var refundErr *RefundError
	require.True(t, errors.As(err, &refundErr))
	assert.Equal(t, RefundStageLookup, refundErr.Stage)
	assert.Equal(t, 1, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
}

func TestRefund_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, env *testEnv, original *Transaction)
		req   func(req *RefundRequest)
		field string
	}{
		{
			name:  "amount above original",
			req:   func(req *RefundRequest) { req.Amount = decimal.NewFromInt(121) },
			field: "amount",
		},
		{
			name:  "zero amount",
			req:   func(req *RefundRequest) { req.Amount = decimal.Zero },
			field: "amount",
		},
		{
			name:  "blank reason",
			req:   func(req *RefundRequest) { req.Reason = "  " },
			field: "reason",
		},
		{
			name:  "unknown category",
			req:   func(req *RefundRequest) { req.Category = "luxury" },
			field: "category",
		},
		{
			name: "already refunded",
			setup: func(t *testing.T, env *testEnv, original *Transaction) {
				_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
					Owner: original.Owner, OriginalID: original.ID, Amount: original.Amount, Reason: "first",
				})
				require.NoError(t, err)
			},
			field: "originalID",
		},
		{
			name: "deleted original",
			setup: func(t *testing.T, env *testEnv, original *Transaction) {
				require.NoError(t, env.svc.Budget.DeleteTransaction(context.Background(), original.Owner, original.ID))
			},
			field: "originalID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			owner := newOwner()
			original := seedOriginal(t, env, owner, "120")
			if tt.setup != nil {
				tt.setup(t, env, original)
			}
			rowsBefore := env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID)

			req := RefundRequest{Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(10), Reason: "because"}
			if tt.req != nil {
				tt.req(&req)
			}
			_, err := env.svc.Refunds.Refund(context.Background(), req)

			var refundErr *RefundError
			require.True(t, errors.As(err, &refundErr))
			assert.Equal(t, RefundStageValidation, refundErr.Stage)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, rowsBefore, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
		})
	}
}

func TestRefund_OriginalNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner:      newOwner(),
		OriginalID: uuid.Must(uuid.NewV4()),
		Amount:     decimal.NewFromInt(1),
		Reason:     "missing",
	})

	var refundErr *RefundError
	require.True(t, errors.As(err, &refundErr))
	assert.Equal(t, RefundStageLookup, refundErr.Stage)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestRefund_OtherOwnersTransactionNotFound(t *testing.T) {
	env := newTestEnv(t)
	original := seedOriginal(t, env, newOwner(), "50")

	_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner:      newOwner(),
		OriginalID: original.ID,
		Amount:     decimal.NewFromInt(1),
		Reason:     "not mine",
	})

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestRefund_InsertFailure(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	original := seedOriginal(t, env, owner, "50")
	env.mem.FailNext("transactions.Insert", errors.New("connection reset"))

	_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(5), Reason: "late delivery",
	})

	var refundErr *RefundError
	require.True(t, errors.As(err, &refundErr))
	assert.Equal(t, RefundStageInsert, refundErr.Stage)
	assert.Equal(t, uuid.Nil, refundErr.RefundID)
	var commitErr *CommitError
	assert.True(t, errors.As(err, &commitErr))
}

func TestRefund_StatusUpdateFailureReportsOrphanRefund(t *testing.T) {
	env := newTestEnv(t)
	owner := newOwner()
	original := seedOriginal(t, env, owner, "50")
	env.mem.FailNext("transactions.Update", errors.New("connection reset"))

	_, err := env.svc.Refunds.Refund(context.Background(), RefundRequest{
		Owner: owner, OriginalID: original.ID, Amount: decimal.NewFromInt(50), Reason: "returned",
	})

	var refundErr *RefundError
	require.True(t, errors.As(err, &refundErr))
	assert.Equal(t, RefundStageStatusUpdate, refundErr.Stage)
	assert.NotEqual(t, uuid.Nil, refundErr.RefundID)
	assert.Contains(t, err.Error(), refundErr.RefundID.String())
	assert.Equal(t, refundErr.RefundID.String(), refundErr.Fields()["orphanRefundID"])
	assert.True(t, hasMessage(env.hook, logrus.ErrorLevel, "RefundProcessor.Refund.statusUpdateFailed"))

	// The refund row exists while the original keeps its status.
	assert.Equal(t, 2, env.mem.CountRows(sqlconfig.TableTransactions, owner.UserID))
	row, findErr := env.mem.Transactions().FindByID(context.Background(), original.ID)
	require.NoError(t, findErr)
	assert.Equal(t, string(StatusActive), row.Status)
}
