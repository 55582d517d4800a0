package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ IBudgetConfigTable = (*BudgetConfigsTable)(nil)

// BudgetConfigsTable provides access to the budget_configs table.
type BudgetConfigsTable struct {
	exec   bob.Executor
	schema Schema
}

// NewBudgetConfigsTable creates a BudgetConfigsTable for the given executor.
func NewBudgetConfigsTable(exec bob.Executor, schema Schema) *BudgetConfigsTable {
	return &BudgetConfigsTable{exec: exec, schema: schema}
}

func (t *BudgetConfigsTable) columns() []any {
	return []any{
		"id", "user_id", profileColumn(t.schema), "budget_period_id", "budget_month", "budget_year",
		"monthly_salary", "budget_percentage", "allocation_need", "allocation_want",
		"allocation_savings", "allocation_investments", "created_at", "updated_at",
	}
}

// Find retrieves the config of one budget month.
func (t *BudgetConfigsTable) Find(ctx context.Context, scope PeriodScope) (*BudgetConfig, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(t.columns()...),
		sm.From(TableBudgetConfigs),
		sm.Limit(1),
	}
	for _, f := range periodScopeFilters(t.schema, scope) {
		queryMods = append(queryMods, sm.Where(f))
	}
	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[BudgetConfig]())
	if err != nil {
		return nil, translate(TableBudgetConfigs, err)
	}
	if !t.schema.ProfileScoped {
		row.ProfileName = scope.Owner.ProfileName
	}
	return &row, nil
}

// Upsert inserts the config or overwrites the existing row for the same key.
func (t *BudgetConfigsTable) Upsert(ctx context.Context, upsert *BudgetConfigUpsert) (*BudgetConfig, error) {
	columns := []string{
		"user_id", "budget_period_id", "budget_month", "budget_year", "monthly_salary",
		"budget_percentage", "allocation_need", "allocation_want", "allocation_savings",
		"allocation_investments",
	}
	values := []bob.Expression{
		psql.Arg(upsert.Scope.Owner.UserID), psql.Arg(upsert.BudgetPeriodID),
		psql.Arg(upsert.Scope.Month), psql.Arg(upsert.Scope.Year),
		psql.Arg(upsert.MonthlySalary), psql.Arg(upsert.BudgetPercentage),
		psql.Arg(upsert.AllocationNeed), psql.Arg(upsert.AllocationWant),
		psql.Arg(upsert.AllocationSavings), psql.Arg(upsert.AllocationInvestments),
	}
	conflict := []any{"user_id", "budget_year", "budget_month"}
	if t.schema.ProfileScoped {
		columns = append(columns, "profile_name")
		values = append(values, psql.Arg(upsert.Scope.Owner.ProfileName))
		conflict = []any{"user_id", "profile_name", "budget_year", "budget_month"}
	}

	q := psql.Insert(
		im.Into(TableBudgetConfigs, columns...),
		im.Values(values...),
		im.OnConflict(conflict...).DoUpdate(
			im.SetExcluded(
				"budget_period_id", "monthly_salary", "budget_percentage", "allocation_need",
				"allocation_want", "allocation_savings", "allocation_investments",
			),
		),
		im.Returning(t.columns()...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[BudgetConfig]())
	if err != nil {
		return nil, translate(TableBudgetConfigs, err)
	}
	if !t.schema.ProfileScoped {
		row.ProfileName = upsert.Scope.Owner.ProfileName
	}
	return &row, nil
}

// Delete removes the config of one budget month.
func (t *BudgetConfigsTable) Delete(ctx context.Context, scope PeriodScope) error {
	queryMods := []bob.Mod[*dialect.DeleteQuery]{dm.From(TableBudgetConfigs)}
	for _, f := range periodScopeFilters(t.schema, scope) {
		queryMods = append(queryMods, dm.Where(f))
	}
	_, err := bob.Exec(ctx, t.exec, psql.Delete(queryMods...))
	return translate(TableBudgetConfigs, err)
}

// DeleteByPeriodID removes every config bound to a period.
func (t *BudgetConfigsTable) DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From(TableBudgetConfigs),
		dm.Where(psql.Quote("budget_period_id").EQ(psql.Arg(periodID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, translate(TableBudgetConfigs, err)
	}
	return affected(TableBudgetConfigs, res)
}
