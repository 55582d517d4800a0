package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IPortfolioTable = (*PortfoliosTable)(nil)

// PortfoliosTable provides access to the investment_* tables.
type PortfoliosTable struct {
	exec   bob.Executor
	schema Schema
}

// NewPortfoliosTable creates a PortfoliosTable for the given executor.
func NewPortfoliosTable(exec bob.Executor, schema Schema) *PortfoliosTable {
	return &PortfoliosTable{exec: exec, schema: schema}
}

func (t *PortfoliosTable) activeQuery(table string, scope PeriodScope, columns ...any) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(table),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	}
	for _, f := range periodScopeFilters(t.schema, scope) {
		queryMods = append(queryMods, sm.Where(f))
	}
	return psql.Select(queryMods...)
}

// ListPortfolios returns the active portfolios of a budget month.
func (t *PortfoliosTable) ListPortfolios(ctx context.Context, scope PeriodScope) ([]*InvestmentPortfolio, error) {
	q := t.activeQuery(TableInvestmentPortfolios, scope,
		"id", "user_id", profileColumn(t.schema), "budget_period_id", "budget_month", "budget_year",
		"name", "allocation_type", "allocation_value", "allocated_amount", "invested_amount",
		"allow_direct_investment", "is_active", "created_at", "updated_at",
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[InvestmentPortfolio]())
	if err != nil {
		return nil, translate(TableInvestmentPortfolios, err)
	}
	result := make([]*InvestmentPortfolio, len(rows))
	for i := range rows {
		rows[i].ProfileName = scope.Owner.ProfileName
		result[i] = &rows[i]
	}
	return result, nil
}

// ListCategories returns the active investment categories of a budget month.
func (t *PortfoliosTable) ListCategories(ctx context.Context, scope PeriodScope) ([]*InvestmentCategory, error) {
	q := t.activeQuery(TableInvestmentCategories, scope,
		"id", "portfolio_id", "user_id", profileColumn(t.schema), "budget_period_id", "budget_month",
		"budget_year", "name", "allocation_type", "allocation_value", "allocated_amount",
		"invested_amount", "is_active", "created_at", "updated_at",
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[InvestmentCategory]())
	if err != nil {
		return nil, translate(TableInvestmentCategories, err)
	}
	result := make([]*InvestmentCategory, len(rows))
	for i := range rows {
		rows[i].ProfileName = scope.Owner.ProfileName
		result[i] = &rows[i]
	}
	return result, nil
}

// ListFunds returns the active investment funds of a budget month.
func (t *PortfoliosTable) ListFunds(ctx context.Context, scope PeriodScope) ([]*InvestmentFund, error) {
	q := t.activeQuery(TableInvestmentFunds, scope,
		"id", "category_id", "user_id", profileColumn(t.schema), "budget_period_id", "budget_month",
		"budget_year", "name", "allocated_amount", "invested_amount", "is_active", "created_at",
		"updated_at",
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[InvestmentFund]())
	if err != nil {
		return nil, translate(TableInvestmentFunds, err)
	}
	result := make([]*InvestmentFund, len(rows))
	for i := range rows {
		rows[i].ProfileName = scope.Owner.ProfileName
		result[i] = &rows[i]
	}
	return result, nil
}

// Deactivate soft-deletes a portfolio.
func (t *PortfoliosTable) Deactivate(ctx context.Context, owner Owner, portfolioID uuid.UUID) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableInvestmentPortfolios),
		um.SetCol("is_active").ToArg(false),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(portfolioID))),
	}
	for _, f := range ownerFilters(t.schema, owner) {
		queryMods = append(queryMods, um.Where(f))
	}
	res, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return translate(TableInvestmentPortfolios, err)
	}
	return expectAffected(TableInvestmentPortfolios, res)
}

// DeleteAllInPeriod hard-deletes the whole hierarchy of a budget month.
func (t *PortfoliosTable) DeleteAllInPeriod(ctx context.Context, scope PeriodScope) error {
	for _, table := range []string{TableInvestmentFunds, TableInvestmentCategories, TableInvestmentPortfolios} {
		queryMods := []bob.Mod[*dialect.DeleteQuery]{dm.From(table)}
		for _, f := range periodScopeFilters(t.schema, scope) {
			queryMods = append(queryMods, dm.Where(f))
		}
		if _, err := bob.Exec(ctx, t.exec, psql.Delete(queryMods...)); err != nil {
			return translate(table, err)
		}
	}
	return nil
}

// DeleteByPeriodID hard-deletes the hierarchy bound to a period.
func (t *PortfoliosTable) DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error) {
	var removed int64
	for _, table := range []string{TableInvestmentFunds, TableInvestmentCategories, TableInvestmentPortfolios} {
		q := psql.Delete(
			dm.From(table),
			dm.Where(psql.Quote("budget_period_id").EQ(psql.Arg(periodID))),
		)
		res, err := bob.Exec(ctx, t.exec, q)
		if err != nil {
			return 0, translate(table, err)
		}
		if table == TableInvestmentPortfolios {
			if removed, err = affected(table, res); err != nil {
				return 0, err
			}
		}
	}
	return removed, nil
}
