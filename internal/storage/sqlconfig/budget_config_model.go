package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// BudgetConfig represents a budget_configs record.
type BudgetConfig struct {
	ID                    uuid.UUID       `db:"id"`
	UserID                uuid.UUID       `db:"user_id"`
	ProfileName           string          `db:"profile_name"`
	BudgetPeriodID        uuid.NullUUID   `db:"budget_period_id"`
	BudgetMonth           int             `db:"budget_month"`
	BudgetYear            int             `db:"budget_year"`
	MonthlySalary         decimal.Decimal `db:"monthly_salary"`
	BudgetPercentage      decimal.Decimal `db:"budget_percentage"`
	AllocationNeed        decimal.Decimal `db:"allocation_need"`
	AllocationWant        decimal.Decimal `db:"allocation_want"`
	AllocationSavings     decimal.Decimal `db:"allocation_savings"`
	AllocationInvestments decimal.Decimal `db:"allocation_investments"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

// BudgetConfigUpsert is written on the (user, profile, year, month) key.
type BudgetConfigUpsert struct {
	Scope                 PeriodScope
	BudgetPeriodID        uuid.UUID
	MonthlySalary         decimal.Decimal
	BudgetPercentage      decimal.Decimal
	AllocationNeed        decimal.Decimal
	AllocationWant        decimal.Decimal
	AllocationSavings     decimal.Decimal
	AllocationInvestments decimal.Decimal
}

// IBudgetConfigTable defines the interface for budget config storage operations.
type IBudgetConfigTable interface {
	Find(ctx context.Context, scope PeriodScope) (*BudgetConfig, error)
	Upsert(ctx context.Context, upsert *BudgetConfigUpsert) (*BudgetConfig, error)
	Delete(ctx context.Context, scope PeriodScope) error
	DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error)
}
