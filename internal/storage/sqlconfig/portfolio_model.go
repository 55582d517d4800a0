package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// InvestmentPortfolio represents an investment_portfolios record.
type InvestmentPortfolio struct {
	ID                    uuid.UUID       `db:"id"`
	UserID                uuid.UUID       `db:"user_id"`
	ProfileName           string          `db:"profile_name"`
	BudgetPeriodID        uuid.NullUUID   `db:"budget_period_id"`
	BudgetMonth           int             `db:"budget_month"`
	BudgetYear            int             `db:"budget_year"`
	Name                  string          `db:"name"`
	AllocationType        string          `db:"allocation_type"`
	AllocationValue       decimal.Decimal `db:"allocation_value"`
	AllocatedAmount       decimal.Decimal `db:"allocated_amount"`
	InvestedAmount        decimal.Decimal `db:"invested_amount"`
	AllowDirectInvestment bool            `db:"allow_direct_investment"`
	IsActive              bool            `db:"is_active"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

// InvestmentCategory represents an investment_categories record.
type InvestmentCategory struct {
	ID              uuid.UUID       `db:"id"`
	PortfolioID     uuid.UUID       `db:"portfolio_id"`
	UserID          uuid.UUID       `db:"user_id"`
	ProfileName     string          `db:"profile_name"`
	BudgetPeriodID  uuid.NullUUID   `db:"budget_period_id"`
	BudgetMonth     int             `db:"budget_month"`
	BudgetYear      int             `db:"budget_year"`
	Name            string          `db:"name"`
	AllocationType  string          `db:"allocation_type"`
	AllocationValue decimal.Decimal `db:"allocation_value"`
	AllocatedAmount decimal.Decimal `db:"allocated_amount"`
	InvestedAmount  decimal.Decimal `db:"invested_amount"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// InvestmentFund represents an investment_funds record.
type InvestmentFund struct {
	ID              uuid.UUID       `db:"id"`
	CategoryID      uuid.UUID       `db:"category_id"`
	UserID          uuid.UUID       `db:"user_id"`
	ProfileName     string          `db:"profile_name"`
	BudgetPeriodID  uuid.NullUUID   `db:"budget_period_id"`
	BudgetMonth     int             `db:"budget_month"`
	BudgetYear      int             `db:"budget_year"`
	Name            string          `db:"name"`
	AllocatedAmount decimal.Decimal `db:"allocated_amount"`
	InvestedAmount  decimal.Decimal `db:"invested_amount"`
	IsActive        bool            `db:"is_active"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// IPortfolioTable covers the investment hierarchy. Only reads, deactivation and
// bulk deletes are offered; editing portfolios is not this service's job.
type IPortfolioTable interface {
	ListPortfolios(ctx context.Context, scope PeriodScope) ([]*InvestmentPortfolio, error)
	ListCategories(ctx context.Context, scope PeriodScope) ([]*InvestmentCategory, error)
	ListFunds(ctx context.Context, scope PeriodScope) ([]*InvestmentFund, error)
	Deactivate(ctx context.Context, owner Owner, portfolioID uuid.UUID) error
	// DeleteAllInPeriod hard-deletes funds, categories and portfolios, in that order.
	DeleteAllInPeriod(ctx context.Context, scope PeriodScope) error
	// DeleteByPeriodID hard-deletes the hierarchy bound to a period and returns
	// the number of portfolios removed.
	DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error)
}
