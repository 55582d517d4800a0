package sqlconfig

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SQLSTATE codes the reconciliation protocol reacts to.
const (
	codeNotNullViolation    = pq.ErrorCode("23502")
	codeForeignKeyViolation = pq.ErrorCode("23503")
	codeUniqueViolation     = pq.ErrorCode("23505")
	codeUndefinedTable      = pq.ErrorCode("42P01")
)

var (
	// ErrNotFound is returned by lookups that matched no row. It is never a
	// transport failure.
	ErrNotFound = errors.New("sqlconfig: row not found")

	// ErrTableMissing is returned when a statement targets a table the
	// connected schema does not have.
	ErrTableMissing = errors.New("sqlconfig: table does not exist")
)

// BackendDetail is the diagnostic portion of a backend error.
type BackendDetail struct {
	Code    string
	Message string
	Detail  string
	Hint    string
	Table   string
	Column  string
}

// Empty reports whether no backend detail could be extracted.
func (d BackendDetail) Empty() bool {
	return d.Code == "" && d.Message == ""
}

// DetailOf extracts the backend code, message, detail and hint from err when it
// wraps a *pq.Error.
func DetailOf(err error) BackendDetail {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return BackendDetail{}
	}
	return BackendDetail{
		Code:    string(pqErr.Code),
		Message: pqErr.Message,
		Detail:  pqErr.Detail,
		Hint:    pqErr.Hint,
		Table:   pqErr.Table,
		Column:  pqErr.Column,
	}
}

// IsUniqueViolation reports a unique-constraint failure (23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation
}

// IsStalePeriodViolation reports the not-null violation (23502) the backend
// raises against the budget_periods relation when a transaction is bound to a
// period row that no longer exists. The bundled migrations surface the same
// condition as a foreign key violation (23503) naming budget_periods.
func IsStalePeriodViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case codeNotNullViolation:
		return pqErr.Table == TableBudgetPeriods || strings.Contains(pqErr.Message, TableBudgetPeriods)
	case codeForeignKeyViolation:
		return strings.Contains(pqErr.Detail, `"`+TableBudgetPeriods+`"`)
	}
	return false
}

// IsUndefinedTable reports a missing relation (42P01).
func IsUndefinedTable(err error) bool {
	if errors.Is(err, ErrTableMissing) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeUndefinedTable
}

// translate maps driver errors onto the package sentinels while keeping the
// original error in the chain.
func translate(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == codeUndefinedTable {
		return fmt.Errorf("%s: %w: %w", table, ErrTableMissing, err)
	}
	return err
}

// affected reads the row count of a statement on table.
func affected(table string, res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: rows affected: %w", table, err)
	}
	return n, nil
}

// expectAffected returns ErrNotFound when the statement touched no row.
func expectAffected(table string, res sql.Result) error {
	n, err := affected(table, res)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
