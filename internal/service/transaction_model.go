package service

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer. Optional text
// fields are empty when unset.
type Transaction struct {
	ID                    uuid.UUID
	Owner                 Owner
	PeriodID              uuid.NullUUID
	Month                 int
	Year                  int
	Type                  TransactionType
	Category              Category
	Amount                decimal.Decimal
	Description           string
	Notes                 string
	TransactionDate       time.Time
	PaymentType           PaymentType
	SpentFor              string
	Tag                   string
	PortfolioID           uuid.NullUUID
	InvestmentType        string
	RefundFor             uuid.NullUUID
	OriginalTransactionID uuid.NullUUID
	Status                Status
	IsDeleted             bool
	DeletedAt             *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TransactionDraft holds the caller-supplied fields of a new transaction.
// Month and Year select the budget period; a zero TransactionDate means today
// and an empty Status means active.
type TransactionDraft struct {
	Owner           Owner
	Month           int
	Year            int
	Type            TransactionType
	Category        Category
	Amount          decimal.Decimal
	Description     string
	Notes           string
	TransactionDate time.Time
	PaymentType     PaymentType
	SpentFor        string
	Tag             string
	PortfolioID     uuid.NullUUID
	InvestmentType  string
	RefundFor       uuid.NullUUID
	Status          Status
}

// Validate checks the draft before it reaches the store.
func (d TransactionDraft) Validate() error {
	switch {
	case d.Owner.UserID == uuid.Nil:
		return &ValidationError{Field: "userID", Message: "is required"}
	case strings.TrimSpace(d.Owner.ProfileName) == "":
		return &ValidationError{Field: "profileName", Message: "is required"}
	case !d.Type.Valid():
		return &ValidationError{Field: "type", Message: "unknown transaction type " + strconv.Quote(string(d.Type))}
	case !d.Category.Valid():
		return &ValidationError{Field: "category", Message: "unknown category " + strconv.Quote(string(d.Category))}
	case d.Amount.IsNegative():
		return &ValidationError{Field: "amount", Message: "must not be negative"}
	case d.PaymentType != "" && !d.PaymentType.Valid():
		return &ValidationError{Field: "paymentType", Message: "unknown payment type " + strconv.Quote(string(d.PaymentType))}
	case d.Status != "" && !d.Status.Valid():
		return &ValidationError{Field: "status", Message: "unknown status " + strconv.Quote(string(d.Status))}
	}
	return nil
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toCreate(d TransactionDraft, key PeriodKey, periodID uuid.NullUUID, today time.Time) *sqlconfig.TransactionCreate {
	date := d.TransactionDate
	if date.IsZero() {
		date = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	}
	status := d.Status
	if status == "" {
		status = StatusActive
	}
	return &sqlconfig.TransactionCreate{
		UserID:          d.Owner.UserID,
		ProfileName:     d.Owner.ProfileName,
		BudgetPeriodID:  periodID,
		BudgetMonth:     key.Month,
		BudgetYear:      key.Year,
		Type:            string(d.Type),
		Category:        string(d.Category),
		Amount:          d.Amount,
		Description:     nullString(d.Description),
		Notes:           nullString(d.Notes),
		TransactionDate: date,
		PaymentType:     nullString(string(d.PaymentType)),
		SpentFor:        nullString(d.SpentFor),
		Tag:             nullString(d.Tag),
		PortfolioID:     d.PortfolioID,
		InvestmentType:  nullString(d.InvestmentType),
		RefundFor:       d.RefundFor,
		Status:          string(status),
	}
}

func fromRow(row *sqlconfig.Transaction) Transaction {
	tx := Transaction{
		ID:                    row.ID,
		Owner:                 Owner{UserID: row.UserID, ProfileName: row.ProfileName},
		PeriodID:              row.BudgetPeriodID,
		Month:                 row.BudgetMonth,
		Year:                  row.BudgetYear,
		Type:                  TransactionType(row.Type),
		Category:              Category(row.Category),
		Amount:                row.Amount,
		Description:           row.Description.String,
		Notes:                 row.Notes.String,
		TransactionDate:       row.TransactionDate,
		PaymentType:           PaymentType(row.PaymentType.String),
		SpentFor:              row.SpentFor.String,
		Tag:                   row.Tag.String,
		PortfolioID:           row.PortfolioID,
		InvestmentType:        row.InvestmentType.String,
		RefundFor:             row.RefundFor,
		OriginalTransactionID: row.OriginalTransactionID,
		Status:                Status(row.Status),
		IsDeleted:             row.IsDeleted,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
	if row.DeletedAt.Valid {
		deletedAt := row.DeletedAt.Time
		tx.DeletedAt = &deletedAt
	}
	return tx
}
