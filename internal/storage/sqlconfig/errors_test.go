package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsStalePeriodViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "not null on budget_periods table",
			err:  &pq.Error{Code: "23502", Table: TableBudgetPeriods},
			want: true,
		},
		{
			name: "not null mentioning budget_periods",
			err:  fmt.Errorf("insert: %w", &pq.Error{Code: "23502", Message: `null value in column "id" of relation "budget_periods"`}),
			want: true,
		},
		{
			name: "not null elsewhere",
			err:  &pq.Error{Code: "23502", Table: TableTransactions, Message: `null value in column "amount"`},
			want: false,
		},
		{
			name: "foreign key to budget_periods",
			err:  &pq.Error{Code: "23503", Detail: `Key (budget_period_id)=(4f0c) is not present in table "budget_periods".`},
			want: true,
		},
		{
			name: "foreign key to another table",
			err:  &pq.Error{Code: "23503", Detail: `Key (portfolio_id)=(4f0c) is not present in table "investment_portfolios".`},
			want: false,
		},
		{name: "unique violation", err: &pq.Error{Code: "23505", Table: TableBudgetPeriods}, want: false},
		{name: "plain error", err: errors.New("budget_periods"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStalePeriodViolation(tt.err))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pq.Error{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23502"}))
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(TableTransactions, nil))
	assert.ErrorIs(t, translate(TableTransactions, sql.ErrNoRows), ErrNotFound)

	missing := translate(TableMonthlySummaries, &pq.Error{Code: "42P01", Message: `relation "monthly_summaries" does not exist`})
	assert.ErrorIs(t, missing, ErrTableMissing)
	assert.True(t, IsUndefinedTable(missing))
	assert.Equal(t, "42P01", DetailOf(missing).Code)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(TableTransactions, other))
	assert.True(t, DetailOf(other).Empty())
}

func TestSchemaHasTable(t *testing.T) {
	schema := Schema{Present: map[string]bool{TableTransactionHistory: true}}

	assert.True(t, schema.HasTable(TableTransactions), "required tables are always present")
	assert.True(t, schema.HasTable(TableTransactionHistory))
	assert.False(t, schema.HasTable(TableMonthlySummaries))
	assert.True(t, CurrentSchema().HasTable(TableMonthlySummaries))
}
