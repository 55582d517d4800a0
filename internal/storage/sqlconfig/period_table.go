package sqlconfig

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IPeriodTable = (*PeriodsTable)(nil)

var periodColumns = []any{"id", "user_id", "budget_month", "budget_year", "is_active"}

// PeriodsTable provides access to the budget_periods table.
type PeriodsTable struct {
	exec bob.Executor
}

// NewPeriodsTable creates a PeriodsTable over the given executor.
func NewPeriodsTable(exec bob.Executor) *PeriodsTable {
	return &PeriodsTable{exec: exec}
}

// FindByKey retrieves the active period for (user, month, year).
func (t *PeriodsTable) FindByKey(ctx context.Context, userID uuid.UUID, month, year int) (*BudgetPeriod, error) {
	q := psql.Select(
		sm.Columns(periodColumns...),
		sm.From(TableBudgetPeriods),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("budget_month").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("budget_year").EQ(psql.Arg(year))),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.Limit(1),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[BudgetPeriod]())
	if err != nil {
		return nil, translate(TableBudgetPeriods, err)
	}
	return &row, nil
}

// FindByID retrieves a period by primary key regardless of its state.
func (t *PeriodsTable) FindByID(ctx context.Context, id uuid.UUID) (*BudgetPeriod, error) {
	q := psql.Select(
		sm.Columns(periodColumns...),
		sm.From(TableBudgetPeriods),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[BudgetPeriod]())
	if err != nil {
		return nil, translate(TableBudgetPeriods, err)
	}
	return &row, nil
}

// Insert creates an active period and returns its generated ID.
func (t *PeriodsTable) Insert(ctx context.Context, create *BudgetPeriodCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(TableBudgetPeriods, "user_id", "budget_month", "budget_year", "is_active"),
		im.Values(psql.Arg(create.UserID), psql.Arg(create.Month), psql.Arg(create.Year), psql.Arg(true)),
		im.Returning("id"),
	)
	id, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		if errors.Is(translate(TableBudgetPeriods, err), ErrNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return id, nil
}

// UpdateMonthYear rewrites the month and year of a period in place.
func (t *PeriodsTable) UpdateMonthYear(ctx context.Context, id uuid.UUID, month, year int) error {
	q := psql.Update(
		um.Table(TableBudgetPeriods),
		um.SetCol("budget_month").ToArg(month),
		um.SetCol("budget_year").ToArg(year),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return translate(TableBudgetPeriods, err)
	}
	return expectAffected(TableBudgetPeriods, res)
}

// Delete removes a period row.
func (t *PeriodsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(TableBudgetPeriods),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return translate(TableBudgetPeriods, err)
}
