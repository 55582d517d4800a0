package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec   bob.Executor
	schema Schema
}

func NewTransactionsTable(exec bob.Executor, schema Schema) *TransactionsTable {
	return &TransactionsTable{exec: exec, schema: schema}
}

func (t *TransactionsTable) columns() []any {
	return []any{
		"id", "user_id", profileColumn(t.schema), "budget_period_id", "budget_month", "budget_year",
		"type", "category", "amount", "description", "notes", "transaction_date",
		"payment_type", "spent_for", "tag", "portfolio_id", "investment_type",
		"refund_for", "original_transaction_id", "status", "is_deleted", "deleted_at",
		"created_at", "updated_at",
	}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Select(
		sm.Columns(t.columns()...),
		sm.From(TableTransactions),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translate(TableTransactions, err)
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	columns := []string{
		"user_id", "budget_period_id", "budget_month", "budget_year", "type", "category",
		"amount", "description", "notes", "transaction_date", "payment_type", "spent_for",
		"tag", "portfolio_id", "investment_type", "refund_for", "status",
	}
	values := []bob.Expression{
		psql.Arg(create.UserID), psql.Arg(create.BudgetPeriodID), psql.Arg(create.BudgetMonth),
		psql.Arg(create.BudgetYear), psql.Arg(create.Type), psql.Arg(create.Category),
		psql.Arg(create.Amount), psql.Arg(create.Description), psql.Arg(create.Notes),
		psql.Arg(create.TransactionDate), psql.Arg(create.PaymentType), psql.Arg(create.SpentFor),
		psql.Arg(create.Tag), psql.Arg(create.PortfolioID), psql.Arg(create.InvestmentType),
		psql.Arg(create.RefundFor), psql.Arg(create.Status),
	}
	if t.schema.ProfileScoped {
		columns = append(columns, "profile_name")
		values = append(values, psql.Arg(create.ProfileName))
	}

	q := psql.Insert(
		im.Into(TableTransactions, columns...),
		im.Values(values...),
		im.Returning(t.columns()...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translate(TableTransactions, err)
	}
	if !t.schema.ProfileScoped {
		row.ProfileName = create.ProfileName
	}
	return &row, nil
}

// List returns transactions matching the filter, newest transaction date first.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(t.columns()...),
		sm.From(TableTransactions),
	}
	for _, f := range periodScopeFilters(t.schema, filter.Scope) {
		queryMods = append(queryMods, sm.Where(f))
	}
	if !filter.IncludeDeleted {
		queryMods = append(queryMods, sm.Where(psql.Quote("is_deleted").EQ(psql.Arg(false))))
	}
	if refundFor, ok := filter.RefundFor.Get(); ok {
		queryMods = append(queryMods, sm.Where(psql.Quote("refund_for").EQ(psql.Arg(refundFor))))
	}
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translate(TableTransactions, err)
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		if !t.schema.ProfileScoped {
			rows[i].ProfileName = filter.Scope.Owner.ProfileName
		}
		result[i] = &rows[i]
	}
	return result, nil
}

// Update applies the set fields of update to the owner's transaction.
func (t *TransactionsTable) Update(ctx context.Context, owner Owner, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableTransactions),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(t.columns()...),
	}
	for _, f := range ownerFilters(t.schema, owner) {
		queryMods = append(queryMods, um.Where(f))
	}
	if v, ok := update.Status.Get(); ok {
		queryMods = append(queryMods, um.SetCol("status").ToArg(v))
	}
	if v, ok := update.OriginalTransactionID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("original_transaction_id").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		queryMods = append(queryMods, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.Notes.Get(); ok {
		queryMods = append(queryMods, um.SetCol("notes").ToArg(v))
	}
	if v, ok := update.Category.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(v))
	}

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, translate(TableTransactions, err)
	}
	if !t.schema.ProfileScoped {
		row.ProfileName = owner.ProfileName
	}
	return &row, nil
}

// SoftDelete flags one of the owner's transactions as deleted.
func (t *TransactionsTable) SoftDelete(ctx context.Context, owner Owner, id uuid.UUID, at time.Time) error {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableTransactions),
		um.SetCol("is_deleted").ToArg(true),
		um.SetCol("deleted_at").ToArg(at),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	for _, f := range ownerFilters(t.schema, owner) {
		queryMods = append(queryMods, um.Where(f))
	}
	res, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return translate(TableTransactions, err)
	}
	return expectAffected(TableTransactions, res)
}

// SoftDeleteInPeriod flags every live transaction of the scope as deleted.
func (t *TransactionsTable) SoftDeleteInPeriod(ctx context.Context, scope PeriodScope, at time.Time) (int64, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(TableTransactions),
		um.SetCol("is_deleted").ToArg(true),
		um.SetCol("deleted_at").ToArg(at),
		um.Where(psql.Quote("is_deleted").EQ(psql.Arg(false))),
	}
	for _, f := range periodScopeFilters(t.schema, scope) {
		queryMods = append(queryMods, um.Where(f))
	}
	res, err := bob.Exec(ctx, t.exec, psql.Update(queryMods...))
	if err != nil {
		return 0, translate(TableTransactions, err)
	}
	return affected(TableTransactions, res)
}

// DeleteByPeriodID hard-deletes every transaction bound to a period.
func (t *TransactionsTable) DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error) {
	q := psql.Delete(
		dm.From(TableTransactions),
		dm.Where(psql.Quote("budget_period_id").EQ(psql.Arg(periodID))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, translate(TableTransactions, err)
	}
	return affected(TableTransactions, res)
}
