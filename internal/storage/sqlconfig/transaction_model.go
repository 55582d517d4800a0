package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID                    uuid.UUID       `db:"id"`
	UserID                uuid.UUID       `db:"user_id"`
	ProfileName           string          `db:"profile_name"`
	BudgetPeriodID        uuid.NullUUID   `db:"budget_period_id"`
	BudgetMonth           int             `db:"budget_month"`
	BudgetYear            int             `db:"budget_year"`
	Type                  string          `db:"type"`
	Category              string          `db:"category"`
	Amount                decimal.Decimal `db:"amount"`
	Description           sql.NullString  `db:"description"`
	Notes                 sql.NullString  `db:"notes"`
	TransactionDate       time.Time       `db:"transaction_date"`
	PaymentType           sql.NullString  `db:"payment_type"`
	SpentFor              sql.NullString  `db:"spent_for"`
	Tag                   sql.NullString  `db:"tag"`
	PortfolioID           uuid.NullUUID   `db:"portfolio_id"`
	InvestmentType        sql.NullString  `db:"investment_type"`
	RefundFor             uuid.NullUUID   `db:"refund_for"`
	OriginalTransactionID uuid.NullUUID   `db:"original_transaction_id"`
	Status                string          `db:"status"`
	IsDeleted             bool            `db:"is_deleted"`
	DeletedAt             sql.NullTime    `db:"deleted_at"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

// TransactionCreate is the input for creating a new transaction. A null
// BudgetPeriodID is only legal for the bypass insert.
type TransactionCreate struct {
	UserID          uuid.UUID
	ProfileName     string
	BudgetPeriodID  uuid.NullUUID
	BudgetMonth     int
	BudgetYear      int
	Type            string
	Category        string
	Amount          decimal.Decimal
	Description     sql.NullString
	Notes           sql.NullString
	TransactionDate time.Time
	PaymentType     sql.NullString
	SpentFor        sql.NullString
	Tag             sql.NullString
	PortfolioID     uuid.NullUUID
	InvestmentType  sql.NullString
	RefundFor       uuid.NullUUID
	Status          string
}

// TransactionUpdate lists the columns to change; unset fields are left alone.
type TransactionUpdate struct {
	Status                omit.Val[string]
	OriginalTransactionID omit.Val[uuid.UUID]
	Description           omit.Val[string]
	Notes                 omit.Val[string]
	Category              omit.Val[string]
	Amount                omit.Val[decimal.Decimal]
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Scope           PeriodScope
	IncludeDeleted  bool
	RefundFor       omit.Val[uuid.UUID]
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, owner Owner, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	SoftDelete(ctx context.Context, owner Owner, id uuid.UUID, at time.Time) error
	SoftDeleteInPeriod(ctx context.Context, scope PeriodScope, at time.Time) (int64, error)
	DeleteByPeriodID(ctx context.Context, periodID uuid.UUID) (int64, error)
}
