package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Clock returns the current time. Tests substitute a fixed clock.
type Clock func() time.Time

// Owner identifies whose budget a row belongs to. A user may keep several
// named profiles.
type Owner struct {
	UserID      uuid.UUID
	ProfileName string
}

func (o Owner) storage() sqlconfig.Owner {
	return sqlconfig.Owner{UserID: o.UserID, ProfileName: o.ProfileName}
}

func (o Owner) scope(month, year int) sqlconfig.PeriodScope {
	return sqlconfig.PeriodScope{Owner: o.storage(), Month: month, Year: year}
}

// PeriodKey is the natural key of a budget period.
type PeriodKey struct {
	UserID uuid.UUID
	Month  int
	Year   int
}

type TransactionType string

const (
	TransactionTypeExpense    TransactionType = "expense"
	TransactionTypeIncome     TransactionType = "income"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeInvestment TransactionType = "investment"
	TransactionTypeSavings    TransactionType = "savings"
	TransactionTypeTransfer   TransactionType = "transfer"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeRefund,
		TransactionTypeInvestment, TransactionTypeSavings, TransactionTypeTransfer:
		return true
	}
	return false
}

type Category string

const (
	CategoryNeed        Category = "need"
	CategoryWant        Category = "want"
	CategorySavings     Category = "savings"
	CategoryInvestments Category = "investments"
	CategoryUnplanned   Category = "unplanned"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryNeed, CategoryWant, CategorySavings, CategoryInvestments, CategoryUnplanned:
		return true
	}
	return false
}

type Status string

const (
	StatusActive        Status = "active"
	StatusCancelled     Status = "cancelled"
	StatusRefunded      Status = "refunded"
	StatusPartialRefund Status = "partial_refund"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCancelled, StatusRefunded, StatusPartialRefund:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeCash       PaymentType = "cash"
	PaymentTypeCard       PaymentType = "card"
	PaymentTypeUPI        PaymentType = "upi"
	PaymentTypeNetbanking PaymentType = "netbanking"
	PaymentTypeCheque     PaymentType = "cheque"
	PaymentTypeOther      PaymentType = "other"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeCard, PaymentTypeUPI, PaymentTypeNetbanking,
		PaymentTypeCheque, PaymentTypeOther:
		return true
	}
	return false
}
