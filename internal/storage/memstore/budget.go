package memstore

import (
	"context"
	"sort"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// =============================================================================
// BUDGET CONFIGS
// =============================================================================

type budgetConfigTable struct{ s *Store }

func (t *budgetConfigTable) Find(_ context.Context, scope sqlconfig.PeriodScope) (*sqlconfig.BudgetConfig, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("budget_configs.Find"); err != nil {
		return nil, err
	}
	if c := t.s.findConfigLocked(scope); c != nil {
		cp := *c
		return &cp, nil
	}
	return nil, sqlconfig.ErrNotFound
}

func (s *Store) findConfigLocked(scope sqlconfig.PeriodScope) *sqlconfig.BudgetConfig {
	for _, c := range s.configs {
		if s.scopeMatches(c.UserID, c.ProfileName, c.BudgetMonth, c.BudgetYear, scope) {
			return c
		}
	}
	return nil
}

func (t *budgetConfigTable) Upsert(_ context.Context, upsert *sqlconfig.BudgetConfigUpsert) (*sqlconfig.BudgetConfig, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_configs.Upsert"); err != nil {
		return nil, err
	}

	now := t.s.now()
	c := t.s.findConfigLocked(upsert.Scope)
	if c == nil {
		c = &sqlconfig.BudgetConfig{
			ID:          newID(),
			UserID:      upsert.Scope.Owner.UserID,
			ProfileName: upsert.Scope.Owner.ProfileName,
			BudgetMonth: upsert.Scope.Month,
			BudgetYear:  upsert.Scope.Year,
			CreatedAt:   now,
		}
		t.s.configs[c.ID] = c
	}
	c.BudgetPeriodID = uuid.NullUUID{UUID: upsert.BudgetPeriodID, Valid: upsert.BudgetPeriodID != uuid.Nil}
	c.MonthlySalary = upsert.MonthlySalary
	c.BudgetPercentage = upsert.BudgetPercentage
	c.AllocationNeed = upsert.AllocationNeed
	c.AllocationWant = upsert.AllocationWant
	c.AllocationSavings = upsert.AllocationSavings
	c.AllocationInvestments = upsert.AllocationInvestments
	c.UpdatedAt = now

	cp := *c
	return &cp, nil
}

func (t *budgetConfigTable) Delete(_ context.Context, scope sqlconfig.PeriodScope) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_configs.Delete"); err != nil {
		return err
	}
	for id, c := range t.s.configs {
		if t.s.scopeMatches(c.UserID, c.ProfileName, c.BudgetMonth, c.BudgetYear, scope) {
			delete(t.s.configs, id)
		}
	}
	return nil
}

func (t *budgetConfigTable) DeleteByPeriodID(_ context.Context, periodID uuid.UUID) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("budget_configs.DeleteByPeriodID"); err != nil {
		return 0, err
	}
	var n int64
	for id, c := range t.s.configs {
		if c.BudgetPeriodID.Valid && c.BudgetPeriodID.UUID == periodID {
			delete(t.s.configs, id)
			n++
		}
	}
	return n, nil
}

// =============================================================================
// INVESTMENT PORTFOLIOS
// =============================================================================

type portfolioTable struct{ s *Store }

func (t *portfolioTable) ListPortfolios(_ context.Context, scope sqlconfig.PeriodScope) ([]*sqlconfig.InvestmentPortfolio, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("investment_portfolios.ListPortfolios"); err != nil {
		return nil, err
	}
	var rows []*sqlconfig.InvestmentPortfolio
	for _, p := range t.s.portfolios {
		if p.IsActive && t.s.scopeMatches(p.UserID, p.ProfileName, p.BudgetMonth, p.BudgetYear, scope) {
			cp := *p
			rows = append(rows, &cp)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func (t *portfolioTable) ListCategories(_ context.Context, scope sqlconfig.PeriodScope) ([]*sqlconfig.InvestmentCategory, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("investment_categories.ListCategories"); err != nil {
		return nil, err
	}
	var rows []*sqlconfig.InvestmentCategory
	for _, c := range t.s.categories {
		if c.IsActive && t.s.scopeMatches(c.UserID, c.ProfileName, c.BudgetMonth, c.BudgetYear, scope) {
			cp := *c
			rows = append(rows, &cp)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func (t *portfolioTable) ListFunds(_ context.Context, scope sqlconfig.PeriodScope) ([]*sqlconfig.InvestmentFund, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("investment_funds.ListFunds"); err != nil {
		return nil, err
	}
	var rows []*sqlconfig.InvestmentFund
	for _, f := range t.s.funds {
		if f.IsActive && t.s.scopeMatches(f.UserID, f.ProfileName, f.BudgetMonth, f.BudgetYear, scope) {
			cp := *f
			rows = append(rows, &cp)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func (t *portfolioTable) Deactivate(_ context.Context, owner sqlconfig.Owner, portfolioID uuid.UUID) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("investment_portfolios.Deactivate"); err != nil {
		return err
	}
	p, ok := t.s.portfolios[portfolioID]
	if !ok || !t.s.ownerMatches(p.UserID, p.ProfileName, owner) {
		return sqlconfig.ErrNotFound
	}
	p.IsActive = false
	p.UpdatedAt = t.s.now()
	return nil
}

func (t *portfolioTable) DeleteAllInPeriod(_ context.Context, scope sqlconfig.PeriodScope) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("investment_portfolios.DeleteAllInPeriod"); err != nil {
		return err
	}
	for id, f := range t.s.funds {
		if t.s.scopeMatches(f.UserID, f.ProfileName, f.BudgetMonth, f.BudgetYear, scope) {
			delete(t.s.funds, id)
		}
	}
	for id, c := range t.s.categories {
		if t.s.scopeMatches(c.UserID, c.ProfileName, c.BudgetMonth, c.BudgetYear, scope) {
			delete(t.s.categories, id)
		}
	}
	for id, p := range t.s.portfolios {
		if t.s.scopeMatches(p.UserID, p.ProfileName, p.BudgetMonth, p.BudgetYear, scope) {
			delete(t.s.portfolios, id)
		}
	}
	return nil
}

func (t *portfolioTable) DeleteByPeriodID(_ context.Context, periodID uuid.UUID) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("investment_portfolios.DeleteByPeriodID"); err != nil {
		return 0, err
	}
	bound := func(id uuid.NullUUID) bool { return id.Valid && id.UUID == periodID }
	for id, f := range t.s.funds {
		if bound(f.BudgetPeriodID) {
			delete(t.s.funds, id)
		}
	}
	for id, c := range t.s.categories {
		if bound(c.BudgetPeriodID) {
			delete(t.s.categories, id)
		}
	}
	var n int64
	for id, p := range t.s.portfolios {
		if bound(p.BudgetPeriodID) {
			delete(t.s.portfolios, id)
			n++
		}
	}
	return n, nil
}

// =============================================================================
// USER DATA
// =============================================================================

type userDataTable struct{ s *Store }

func (t *userDataTable) Wipe(_ context.Context, userID uuid.UUID) (*sqlconfig.WipeReport, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("user_data.Wipe"); err != nil {
		return nil, err
	}

	report := &sqlconfig.WipeReport{UserID: userID, Deleted: make(map[string]int64, len(sqlconfig.WipeOrder))}
	for _, table := range sqlconfig.WipeOrder {
		if !t.s.schema.HasTable(table) {
			report.Skipped = append(report.Skipped, table)
			continue
		}
		report.Deleted[table] = t.s.deleteUserRowsLocked(table, userID)
	}
	return report, nil
}

func (s *Store) deleteUserRowsLocked(table string, userID uuid.UUID) int64 {
	var n int64
	switch table {
	case sqlconfig.TableTransactions:
		for id, r := range s.transactions {
			if r.UserID == userID {
				delete(s.transactions, id)
				n++
			}
		}
	case sqlconfig.TableInvestmentFunds:
		for id, r := range s.funds {
			if r.UserID == userID {
				delete(s.funds, id)
				n++
			}
		}
	case sqlconfig.TableInvestmentCategories:
		for id, r := range s.categories {
			if r.UserID == userID {
				delete(s.categories, id)
				n++
			}
		}
	case sqlconfig.TableInvestmentPortfolios:
		for id, r := range s.portfolios {
			if r.UserID == userID {
				delete(s.portfolios, id)
				n++
			}
		}
	case sqlconfig.TableBudgetConfigs:
		for id, r := range s.configs {
			if r.UserID == userID {
				delete(s.configs, id)
				n++
			}
		}
	case sqlconfig.TableBudgetPeriods:
		for id, r := range s.periods {
			if r.UserID == userID {
				delete(s.periods, id)
				n++
			}
		}
	default:
		kept := s.optional[table][:0]
		for _, owner := range s.optional[table] {
			if owner == userID {
				n++
				continue
			}
			kept = append(kept, owner)
		}
		s.optional[table] = kept
	}
	return n
}
