package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
)

// WipeOrder is the order in which a user's rows are removed. Children go before
// the rows they reference.
var WipeOrder = []string{
	TableTransactionHistory,
	TableTransactions,
	TableInvestmentFunds,
	TableInvestmentCategories,
	TableInvestmentPortfolios,
	TableBudgetConfigs,
	TableBudgetPeriods,
	TableMonthlySummaries,
}

// WipeReport lists what a bulk wipe removed.
type WipeReport struct {
	UserID  uuid.UUID
	Deleted map[string]int64
	// Skipped holds optional tables the connected schema does not have.
	Skipped []string
}

// IUserDataTable removes every row belonging to a user.
type IUserDataTable interface {
	Wipe(ctx context.Context, userID uuid.UUID) (*WipeReport, error)
}

// Transactor starts transactions. bob.DB satisfies it.
type Transactor interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (bob.Tx, error)
}

var _ IUserDataTable = (*UserDataTable)(nil)

// UserDataTable runs the per-user bulk wipe in a single transaction.
type UserDataTable struct {
	db     Transactor
	schema Schema
}

func NewUserDataTable(db Transactor, schema Schema) *UserDataTable {
	return &UserDataTable{db: db, schema: schema}
}

// Wipe deletes the user's rows in WipeOrder. Optional tables absent from the
// schema are skipped and reported.
func (t *UserDataTable) Wipe(ctx context.Context, userID uuid.UUID) (*WipeReport, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	report, err := wipeUser(ctx, tx, t.schema, userID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return report, nil
}

func wipeUser(ctx context.Context, exec bob.Executor, schema Schema, userID uuid.UUID) (*WipeReport, error) {
	report := &WipeReport{UserID: userID, Deleted: make(map[string]int64, len(WipeOrder))}
	for _, table := range WipeOrder {
		if !schema.HasTable(table) {
			report.Skipped = append(report.Skipped, table)
			continue
		}
		q := psql.Delete(
			dm.From(table),
			dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		)
		res, err := bob.Exec(ctx, exec, q)
		if err != nil {
			return nil, fmt.Errorf("wipe %s: %w", table, translate(table, err))
		}
		n, err := affected(table, res)
		if err != nil {
			return nil, fmt.Errorf("wipe %s: %w", table, err)
		}
		report.Deleted[table] = n
	}
	return report, nil
}
