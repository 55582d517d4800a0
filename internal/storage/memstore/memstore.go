// Package memstore provides an in-memory implementation of the storage tables,
// for development and for exercising the reconciliation protocol in tests.
//
// The store reproduces the backend failures the protocol reacts to: a duplicate
// active period fails with a unique violation and a transaction bound to a
// missing period fails with the not-null violation against budget_periods.
package memstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// =============================================================================
// STORE
// =============================================================================

type Store struct {
	mu sync.RWMutex

	schema sqlconfig.Schema
	now    func() time.Time

	periods      map[uuid.UUID]*sqlconfig.BudgetPeriod
	transactions map[uuid.UUID]*sqlconfig.Transaction
	configs      map[uuid.UUID]*sqlconfig.BudgetConfig
	portfolios   map[uuid.UUID]*sqlconfig.InvestmentPortfolio
	categories   map[uuid.UUID]*sqlconfig.InvestmentCategory
	funds        map[uuid.UUID]*sqlconfig.InvestmentFund
	// optional holds row owners of the optional tables, keyed by table name.
	optional map[string][]uuid.UUID

	faultMu sync.Mutex
	faults  map[string]error
}

// New returns an empty store with the current schema.
func New() *Store {
	return NewWithSchema(sqlconfig.CurrentSchema())
}

// NewWithSchema returns an empty store that behaves like a database with the
// given capabilities.
func NewWithSchema(schema sqlconfig.Schema) *Store {
	return &Store{
		schema:       schema,
		now:          time.Now,
		periods:      make(map[uuid.UUID]*sqlconfig.BudgetPeriod),
		transactions: make(map[uuid.UUID]*sqlconfig.Transaction),
		configs:      make(map[uuid.UUID]*sqlconfig.BudgetConfig),
		portfolios:   make(map[uuid.UUID]*sqlconfig.InvestmentPortfolio),
		categories:   make(map[uuid.UUID]*sqlconfig.InvestmentCategory),
		funds:        make(map[uuid.UUID]*sqlconfig.InvestmentFund),
		optional:     make(map[string][]uuid.UUID),
		faults:       make(map[string]error),
	}
}

// Schema returns the capabilities the store emulates.
func (s *Store) Schema() sqlconfig.Schema {
	return s.schema
}

func (s *Store) Periods() sqlconfig.IPeriodTable           { return &periodTable{s} }
func (s *Store) Transactions() sqlconfig.ITransactionTable { return &transactionTable{s} }
func (s *Store) BudgetConfigs() sqlconfig.IBudgetConfigTable {
	return &budgetConfigTable{s}
}
func (s *Store) Portfolios() sqlconfig.IPortfolioTable { return &portfolioTable{s} }
func (s *Store) UserData() sqlconfig.IUserDataTable    { return &userDataTable{s} }

// FailNext makes the next call of op fail with err. Ops are named
// "<table>.<Method>", e.g. "transactions.Update".
func (s *Store) FailNext(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

func (s *Store) fault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	err, ok := s.faults[op]
	if !ok {
		return nil
	}
	delete(s.faults, op)
	return err
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func uniqueViolation(constraint string) error {
	return &pq.Error{
		Code:       "23505",
		Message:    fmt.Sprintf("duplicate key value violates unique constraint %q", constraint),
		Constraint: constraint,
	}
}

func stalePeriodViolation() error {
	return &pq.Error{
		Code:    "23502",
		Message: `null value in column "id" of relation "budget_periods" violates not-null constraint`,
		Table:   sqlconfig.TableBudgetPeriods,
		Column:  "id",
	}
}

func (s *Store) ownerMatches(userID uuid.UUID, profile string, owner sqlconfig.Owner) bool {
	if userID != owner.UserID {
		return false
	}
	return !s.schema.ProfileScoped || profile == owner.ProfileName
}

func (s *Store) scopeMatches(userID uuid.UUID, profile string, month, year int, scope sqlconfig.PeriodScope) bool {
	return s.ownerMatches(userID, profile, scope.Owner) && month == scope.Month && year == scope.Year
}

func parseInt(v sql.NullString) (int, bool) {
	if !v.Valid {
		return 0, false
	}
	n, err := strconv.Atoi(v.String)
	return n, err == nil
}

// =============================================================================
// TEST HOOKS
// =============================================================================

// CorruptPeriod overwrites the stored month and year of a period with raw
// values, bypassing every check.
func (s *Store) CorruptPeriod(id uuid.UUID, month, year sql.NullString) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.periods[id]; ok {
		p.Month = month
		p.Year = year
	}
}

// Period returns a copy of the stored period row.
func (s *Store) Period(id uuid.UUID) (sqlconfig.BudgetPeriod, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.periods[id]
	if !ok {
		return sqlconfig.BudgetPeriod{}, false
	}
	return *p, true
}

// CountRows returns the number of rows the user owns in table.
func (s *Store) CountRows(table string, userID uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	switch table {
	case sqlconfig.TableBudgetPeriods:
		for _, r := range s.periods {
			if r.UserID == userID {
				n++
			}
		}
	case sqlconfig.TableTransactions:
		for _, r := range s.transactions {
			if r.UserID == userID {
				n++
			}
		}
	case sqlconfig.TableBudgetConfigs:
		for _, r := range s.configs {
			if r.UserID == userID {
				n++
			}
		}
	case sqlconfig.TableInvestmentPortfolios:
		for _, r := range s.portfolios {
			if r.UserID == userID {
				n++
			}
		}
	case sqlconfig.TableInvestmentCategories:
		for _, r := range s.categories {
			if r.UserID == userID {
				n++
			}
		}
	case sqlconfig.TableInvestmentFunds:
		for _, r := range s.funds {
			if r.UserID == userID {
				n++
			}
		}
	default:
		for _, owner := range s.optional[table] {
			if owner == userID {
				n++
			}
		}
	}
	return n
}

// AddOptionalRow records a row for the user in an optional table such as
// transaction_history. It is a no-op when the schema lacks the table.
func (s *Store) AddOptionalRow(table string, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.schema.HasTable(table) {
		return
	}
	s.optional[table] = append(s.optional[table], userID)
}

// SeedPortfolio stores an investment portfolio with its categories and funds.
// Missing IDs and timestamps are filled in.
func (s *Store) SeedPortfolio(p sqlconfig.InvestmentPortfolio, categories []sqlconfig.InvestmentCategory, funds []sqlconfig.InvestmentFund) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if p.ID == uuid.Nil {
		p.ID = newID()
	}
	p.CreatedAt, p.UpdatedAt = now, now
	s.portfolios[p.ID] = &p

	for i := range categories {
		c := categories[i]
		if c.ID == uuid.Nil {
			c.ID = newID()
		}
		c.PortfolioID = p.ID
		c.CreatedAt, c.UpdatedAt = now, now
		s.categories[c.ID] = &c
	}
	for i := range funds {
		f := funds[i]
		if f.ID == uuid.Nil {
			f.ID = newID()
		}
		f.CreatedAt, f.UpdatedAt = now, now
		s.funds[f.ID] = &f
	}
	return p.ID
}

// =============================================================================
// BUDGET PERIODS
// =============================================================================

type periodTable struct{ s *Store }

func (t *periodTable) FindByKey(_ context.Context, userID uuid.UUID, month, year int) (*sqlconfig.BudgetPeriod, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("budget_periods.FindByKey"); err != nil {
		return nil, err
	}
	if p := t.s.findPeriodLocked(userID, month, year); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, sqlconfig.ErrNotFound
}

func (s *Store) findPeriodLocked(userID uuid.UUID, month, year int) *sqlconfig.BudgetPeriod {
	for _, p := range s.periods {
		if p.UserID != userID || !p.IsActive {
			continue
		}
		m, okM := parseInt(p.Month)
		y, okY := parseInt(p.Year)
		if okM && okY && m == month && y == year {
			return p
		}
	}
	return nil
}

func (t *periodTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.BudgetPeriod, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("budget_periods.FindByID"); err != nil {
		return nil, err
	}
	p, ok := t.s.periods[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *periodTable) Insert(_ context.Context, create *sqlconfig.BudgetPeriodCreate) (uuid.UUID, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_periods.Insert"); err != nil {
		return uuid.Nil, err
	}
	if t.s.findPeriodLocked(create.UserID, create.Month, create.Year) != nil {
		return uuid.Nil, uniqueViolation("budget_periods_user_month_year_key")
	}
	p := &sqlconfig.BudgetPeriod{
		ID:       newID(),
		UserID:   create.UserID,
		Month:    sql.NullString{String: strconv.Itoa(create.Month), Valid: true},
		Year:     sql.NullString{String: strconv.Itoa(create.Year), Valid: true},
		IsActive: true,
	}
	t.s.periods[p.ID] = p
	return p.ID, nil
}

func (t *periodTable) UpdateMonthYear(_ context.Context, id uuid.UUID, month, year int) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_periods.UpdateMonthYear"); err != nil {
		return err
	}
	p, ok := t.s.periods[id]
	if !ok {
		return sqlconfig.ErrNotFound
	}
	if other := t.s.findPeriodLocked(p.UserID, month, year); other != nil && other.ID != id {
		return uniqueViolation("budget_periods_user_month_year_key")
	}
	p.Month = sql.NullString{String: strconv.Itoa(month), Valid: true}
	p.Year = sql.NullString{String: strconv.Itoa(year), Valid: true}
	return nil
}

func (t *periodTable) Delete(_ context.Context, id uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_periods.Delete"); err != nil {
		return err
	}
	delete(t.s.periods, id)
	return nil
}
