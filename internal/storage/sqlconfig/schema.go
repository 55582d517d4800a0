package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const (
	TableBudgetPeriods        = "budget_periods"
	TableTransactions         = "transactions"
	TableTransactionHistory   = "transaction_history"
	TableBudgetConfigs        = "budget_configs"
	TableInvestmentPortfolios = "investment_portfolios"
	TableInvestmentCategories = "investment_categories"
	TableInvestmentFunds      = "investment_funds"
	TableMonthlySummaries     = "monthly_summaries"
)

// profileScopedTables carry a profile_name column in the current schema
// version. Older deployments keyed these rows by user only.
var profileScopedTables = []string{
	TableTransactions,
	TableBudgetConfigs,
	TableInvestmentPortfolios,
	TableInvestmentCategories,
	TableInvestmentFunds,
}

// optionalTables may be absent from a deployment without that being an error.
var optionalTables = []string{
	TableTransactionHistory,
	TableMonthlySummaries,
}

// Schema describes the capabilities of the connected database. It is detected
// once at startup and handed to every table, so no query has to probe the
// schema by trial and error.
type Schema struct {
	// ProfileScoped is true when every profile-scoped table has profile_name.
	ProfileScoped bool
	// Present lists the optional tables that exist.
	Present map[string]bool
}

// CurrentSchema is the capability set of a database migrated to the latest
// version.
func CurrentSchema() Schema {
	present := make(map[string]bool, len(optionalTables))
	for _, t := range optionalTables {
		present[t] = true
	}
	return Schema{ProfileScoped: true, Present: present}
}

// HasTable reports whether an optional table exists. Required tables are
// always reported present.
func (s Schema) HasTable(name string) bool {
	for _, t := range optionalTables {
		if t == name {
			return s.Present[name]
		}
	}
	return true
}

type schemaColumn struct {
	TableName  string `db:"table_name"`
	ColumnName string `db:"column_name"`
}

type schemaTable struct {
	TableName string `db:"table_name"`
}

// DetectSchema inspects information_schema for the profile_name column and the
// optional tables.
func DetectSchema(ctx context.Context, exec bob.Executor) (Schema, error) {
	columnQuery := psql.Select(
		sm.Columns("table_name", "column_name"),
		sm.From(psql.Quote("information_schema", "columns")),
		sm.Where(psql.Quote("table_schema").EQ(psql.Raw("current_schema()"))),
		sm.Where(psql.Quote("column_name").EQ(psql.Arg("profile_name"))),
	)
	columns, err := bob.All(ctx, exec, columnQuery, scan.StructMapper[schemaColumn]())
	if err != nil {
		return Schema{}, err
	}

	withProfile := make(map[string]bool, len(columns))
	for _, c := range columns {
		withProfile[c.TableName] = true
	}

	schema := Schema{ProfileScoped: true, Present: make(map[string]bool)}
	for _, t := range profileScopedTables {
		if !withProfile[t] {
			schema.ProfileScoped = false
			break
		}
	}

	tableQuery := psql.Select(
		sm.Columns("table_name"),
		sm.From(psql.Quote("information_schema", "tables")),
		sm.Where(psql.Quote("table_schema").EQ(psql.Raw("current_schema()"))),
	)
	tables, err := bob.All(ctx, exec, tableQuery, scan.StructMapper[schemaTable]())
	if err != nil {
		return Schema{}, err
	}

	existing := make(map[string]bool, len(tables))
	for _, t := range tables {
		existing[t.TableName] = true
	}
	for _, t := range optionalTables {
		schema.Present[t] = existing[t]
	}

	return schema, nil
}
