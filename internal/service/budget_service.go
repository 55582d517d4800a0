package service

import (
	"context"
	"errors"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

var defaultBudgetPercentage = decimal.NewFromInt(100)

// BudgetConfig is the allocation plan of one budget month.
type BudgetConfig struct {
	ID                    uuid.UUID
	PeriodID              uuid.NullUUID
	MonthlySalary         decimal.Decimal
	BudgetPercentage      decimal.Decimal
	AllocationNeed        decimal.Decimal
	AllocationWant        decimal.Decimal
	AllocationSavings     decimal.Decimal
	AllocationInvestments decimal.Decimal
}

// BudgetConfigInput is the caller's config. An unset BudgetPercentage means 100.
type BudgetConfigInput struct {
	MonthlySalary         decimal.Decimal
	BudgetPercentage      omit.Val[decimal.Decimal]
	AllocationNeed        decimal.Decimal
	AllocationWant        decimal.Decimal
	AllocationSavings     decimal.Decimal
	AllocationInvestments decimal.Decimal
}

type Fund struct {
	ID              uuid.UUID
	Name            string
	AllocatedAmount decimal.Decimal
	InvestedAmount  decimal.Decimal
}

type InvestmentCategory struct {
	ID              uuid.UUID
	Name            string
	AllocationType  string
	AllocationValue decimal.Decimal
	AllocatedAmount decimal.Decimal
	InvestedAmount  decimal.Decimal
	Funds           []Fund
}

type Portfolio struct {
	ID                    uuid.UUID
	Name                  string
	AllocationType        string
	AllocationValue       decimal.Decimal
	AllocatedAmount       decimal.Decimal
	InvestedAmount        decimal.Decimal
	AllowDirectInvestment bool
	Categories            []InvestmentCategory
}

// BudgetSnapshot is a read-only view of one budget month.
type BudgetSnapshot struct {
	Owner        Owner
	Month        int
	Year         int
	Config       *BudgetConfig
	Portfolios   []Portfolio
	Transactions TransactionList
}

// WithTransaction returns a snapshot with tx as the most recent transaction,
// leaving the receiver's list untouched.
func (s BudgetSnapshot) WithTransaction(tx Transaction) BudgetSnapshot {
	s.Transactions = s.Transactions.Prepend(tx)
	return s
}

// WipeReport lists what a user wipe removed.
type WipeReport struct {
	UserID  uuid.UUID
	Deleted map[string]int64
	Skipped []string
}

// BudgetService covers the budget-month operations around the reconciliation
// core: snapshots, configs, bulk deletes and the user wipe.
type BudgetService struct {
	resolver     *PeriodResolver
	transactions sqlconfig.ITransactionTable
	configs      sqlconfig.IBudgetConfigTable
	portfolios   sqlconfig.IPortfolioTable
	userData     sqlconfig.IUserDataTable
	log          logrus.FieldLogger
	now          Clock
}

func NewBudgetService(store *storage.Storage, resolver *PeriodResolver, log logrus.FieldLogger, now Clock) *BudgetService {
	return &BudgetService{
		resolver:     resolver,
		transactions: store.Transactions,
		configs:      store.BudgetConfigs,
		portfolios:   store.Portfolios,
		userData:     store.UserData,
		log:          log,
		now:          now,
	}
}

// Snapshot loads the config, active portfolio hierarchy and live transactions
// of a budget month.
func (s *BudgetService) Snapshot(ctx context.Context, owner Owner, month, year int) (*BudgetSnapshot, error) {
	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)
	scope := owner.scope(key.Month, key.Year)

	snapshot := &BudgetSnapshot{Owner: owner, Month: key.Month, Year: key.Year}

	cfg, err := s.configs.Find(ctx, scope)
	switch {
	case err == nil:
		snapshot.Config = configFromRow(cfg)
	case !errors.Is(err, sqlconfig.ErrNotFound):
		return nil, err
	}

	portfolios, err := s.loadPortfolios(ctx, scope)
	if err != nil {
		return nil, err
	}
	snapshot.Portfolios = portfolios

	rows, err := s.transactions.List(ctx, &sqlconfig.TransactionFilter{Scope: scope})
	if err != nil {
		return nil, err
	}
	items := make([]Transaction, len(rows))
	for i, row := range rows {
		items[i] = fromRow(row)
	}
	snapshot.Transactions = NewTransactionList(items...)

	return snapshot, nil
}

func (s *BudgetService) loadPortfolios(ctx context.Context, scope sqlconfig.PeriodScope) ([]Portfolio, error) {
	portfolioRows, err := s.portfolios.ListPortfolios(ctx, scope)
	if err != nil {
		return nil, err
	}
	categoryRows, err := s.portfolios.ListCategories(ctx, scope)
	if err != nil {
		return nil, err
	}
	fundRows, err := s.portfolios.ListFunds(ctx, scope)
	if err != nil {
		return nil, err
	}

	fundsByCategory := make(map[uuid.UUID][]Fund)
	for _, f := range fundRows {
		fundsByCategory[f.CategoryID] = append(fundsByCategory[f.CategoryID], Fund{
			ID:              f.ID,
			Name:            f.Name,
			AllocatedAmount: f.AllocatedAmount,
			InvestedAmount:  f.InvestedAmount,
		})
	}

	categoriesByPortfolio := make(map[uuid.UUID][]InvestmentCategory)
	for _, c := range categoryRows {
		categoriesByPortfolio[c.PortfolioID] = append(categoriesByPortfolio[c.PortfolioID], InvestmentCategory{
			ID:              c.ID,
			Name:            c.Name,
			AllocationType:  c.AllocationType,
			AllocationValue: c.AllocationValue,
			AllocatedAmount: c.AllocatedAmount,
			InvestedAmount:  c.InvestedAmount,
			Funds:           fundsByCategory[c.ID],
		})
	}

	portfolios := make([]Portfolio, len(portfolioRows))
	for i, p := range portfolioRows {
		portfolios[i] = Portfolio{
			ID:                    p.ID,
			Name:                  p.Name,
			AllocationType:        p.AllocationType,
			AllocationValue:       p.AllocationValue,
			AllocatedAmount:       p.AllocatedAmount,
			InvestedAmount:        p.InvestedAmount,
			AllowDirectInvestment: p.AllowDirectInvestment,
			Categories:            categoriesByPortfolio[p.ID],
		}
	}
	return portfolios, nil
}

// SaveBudgetConfig resolves the month's period and writes the config on the
// (user, profile, year, month) key.
func (s *BudgetService) SaveBudgetConfig(ctx context.Context, owner Owner, month, year int, input BudgetConfigInput) (*BudgetConfig, error) {
	if err := validateConfigInput(input); err != nil {
		return nil, err
	}
	periodID, err := s.resolver.Resolve(ctx, owner.UserID, month, year)
	if err != nil {
		return nil, err
	}
	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)

	row, err := s.configs.Upsert(ctx, &sqlconfig.BudgetConfigUpsert{
		Scope:                 owner.scope(key.Month, key.Year),
		BudgetPeriodID:        periodID,
		MonthlySalary:         input.MonthlySalary,
		BudgetPercentage:      input.BudgetPercentage.GetOr(defaultBudgetPercentage),
		AllocationNeed:        input.AllocationNeed,
		AllocationWant:        input.AllocationWant,
		AllocationSavings:     input.AllocationSavings,
		AllocationInvestments: input.AllocationInvestments,
	})
	if err != nil {
		return nil, err
	}
	return configFromRow(row), nil
}

func validateConfigInput(input BudgetConfigInput) error {
	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"monthlySalary", input.MonthlySalary},
		{"allocationNeed", input.AllocationNeed},
		{"allocationWant", input.AllocationWant},
		{"allocationSavings", input.AllocationSavings},
		{"allocationInvestments", input.AllocationInvestments},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return &ValidationError{Field: a.field, Message: "must not be negative"}
		}
	}
	if pct, ok := input.BudgetPercentage.Get(); ok {
		if pct.IsNegative() || pct.GreaterThan(defaultBudgetPercentage) {
			return &ValidationError{Field: "budgetPercentage", Message: "must be between 0 and 100"}
		}
	}
	return nil
}

func (s *BudgetService) DeleteBudgetConfig(ctx context.Context, owner Owner, month, year int) error {
	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)
	return s.configs.Delete(ctx, owner.scope(key.Month, key.Year))
}

// DeleteTransaction soft-deletes one of the owner's transactions.
func (s *BudgetService) DeleteTransaction(ctx context.Context, owner Owner, id uuid.UUID) error {
	err := s.transactions.SoftDelete(ctx, owner.storage(), id, s.now())
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrTransactionNotFound
	}
	return err
}

// DeleteAllTransactions soft-deletes every live transaction of the month and
// returns how many were affected.
func (s *BudgetService) DeleteAllTransactions(ctx context.Context, owner Owner, month, year int) (int64, error) {
	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)
	return s.transactions.SoftDeleteInPeriod(ctx, owner.scope(key.Month, key.Year), s.now())
}

// DeleteAllPortfolios hard-deletes the month's funds, categories and portfolios.
func (s *BudgetService) DeleteAllPortfolios(ctx context.Context, owner Owner, month, year int) error {
	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)
	return s.portfolios.DeleteAllInPeriod(ctx, owner.scope(key.Month, key.Year))
}

func (s *BudgetService) DeactivatePortfolio(ctx context.Context, owner Owner, id uuid.UUID) error {
	err := s.portfolios.Deactivate(ctx, owner.storage(), id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrPortfolioNotFound
	}
	return err
}

// WipeUserData removes every row the user owns. Optional tables missing from
// the schema are skipped and reported.
func (s *BudgetService) WipeUserData(ctx context.Context, userID uuid.UUID) (*WipeReport, error) {
	if userID == uuid.Nil {
		return nil, &ValidationError{Field: "userID", Message: "is required"}
	}
	report, err := s.userData.Wipe(ctx, userID)
	if err != nil {
		return nil, err
	}

	log := s.log.WithField("userID", userID.String())
	for _, table := range report.Skipped {
		log.WithField("table", table).Info("BudgetService.WipeUserData.skippedMissingTable")
	}
	log.WithField("deleted", report.Deleted).Info("BudgetService.WipeUserData.complete")

	return &WipeReport{UserID: report.UserID, Deleted: report.Deleted, Skipped: report.Skipped}, nil
}

func configFromRow(row *sqlconfig.BudgetConfig) *BudgetConfig {
	return &BudgetConfig{
		ID:                    row.ID,
		PeriodID:              row.BudgetPeriodID,
		MonthlySalary:         row.MonthlySalary,
		BudgetPercentage:      row.BudgetPercentage,
		AllocationNeed:        row.AllocationNeed,
		AllocationWant:        row.AllocationWant,
		AllocationSavings:     row.AllocationSavings,
		AllocationInvestments: row.AllocationInvestments,
	}
}
