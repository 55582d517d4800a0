package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResult struct {
	n   int64
	err error
}

func (r stubResult) LastInsertId() (int64, error) { return 0, errors.New("not supported") }
func (r stubResult) RowsAffected() (int64, error) { return r.n, r.err }

// stubExec answers every statement with the same result.
type stubExec struct {
	result  sql.Result
	queries []string
}

func (e *stubExec) QueryContext(context.Context, string, ...any) (scan.Rows, error) {
	return nil, errors.New("stubExec: queries not supported")
}

func (e *stubExec) ExecContext(_ context.Context, query string, _ ...any) (sql.Result, error) {
	e.queries = append(e.queries, query)
	return e.result, nil
}

var errDriverCount = errors.New("driver does not report row counts")

func TestExpectAffected(t *testing.T) {
	tests := []struct {
		name    string
		result  stubResult
		wantErr error
	}{
		{name: "one row", result: stubResult{n: 1}},
		{name: "no rows", result: stubResult{n: 0}, wantErr: ErrNotFound},
		{name: "count unavailable", result: stubResult{err: errDriverCount}, wantErr: errDriverCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := expectAffected(TableTransactions, tt.result)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestWipeUser_ReportsCounts(t *testing.T) {
	exec := &stubExec{result: stubResult{n: 2}}

	report, err := wipeUser(context.Background(), exec, CurrentSchema(), uuid.Must(uuid.NewV4()))

	require.NoError(t, err)
	assert.Len(t, exec.queries, len(WipeOrder))
	for _, table := range WipeOrder {
		assert.Equal(t, int64(2), report.Deleted[table], table)
	}
}

func TestWipeUser_RowCountFailureFailsWipe(t *testing.T) {
	exec := &stubExec{result: stubResult{err: errDriverCount}}

	report, err := wipeUser(context.Background(), exec, CurrentSchema(), uuid.Must(uuid.NewV4()))

	assert.Nil(t, report)
	assert.ErrorIs(t, err, errDriverCount)
	assert.Contains(t, err.Error(), "wipe "+WipeOrder[0])
	assert.Len(t, exec.queries, 1, "stops at the first table")
}

func TestSoftDelete_RowCountFailure(t *testing.T) {
	exec := &stubExec{result: stubResult{err: errDriverCount}}
	table := NewTransactionsTable(exec, CurrentSchema())

	err := table.SoftDelete(context.Background(), Owner{UserID: uuid.Must(uuid.NewV4()), ProfileName: "Household"}, uuid.Must(uuid.NewV4()), time.Now())

	assert.ErrorIs(t, err, errDriverCount)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPortfolioDeleteByPeriodID_RowCountFailure(t *testing.T) {
	exec := &stubExec{result: stubResult{err: errDriverCount}}
	table := NewPortfoliosTable(exec, CurrentSchema())

	_, err := table.DeleteByPeriodID(context.Background(), uuid.Must(uuid.NewV4()))

	assert.ErrorIs(t, err, errDriverCount)
}
