package sqlconfig

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"
)

// BudgetPeriod represents a budget_periods record as stored. Month and Year are
// kept raw because a damaged row may hold NULL or non-numeric values.
type BudgetPeriod struct {
	ID       uuid.UUID      `db:"id"`
	UserID   uuid.UUID      `db:"user_id"`
	Month    sql.NullString `db:"budget_month"`
	Year     sql.NullString `db:"budget_year"`
	IsActive bool           `db:"is_active"`
}

// BudgetPeriodCreate is the input for creating a new active budget period.
type BudgetPeriodCreate struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

// IPeriodTable defines the interface for budget period storage operations.
// Lookups return ErrNotFound when no row matches.
//
//go:generate mockery --name IPeriodTable --output mock_IPeriodTable.go
type IPeriodTable interface {
	FindByKey(ctx context.Context, userID uuid.UUID, month, year int) (*BudgetPeriod, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BudgetPeriod, error)
	// Insert returns uuid.Nil without error when the backend accepted the row
	// but returned no identifier.
	Insert(ctx context.Context, create *BudgetPeriodCreate) (uuid.UUID, error)
	UpdateMonthYear(ctx context.Context, id uuid.UUID, month, year int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
