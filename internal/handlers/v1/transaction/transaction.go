package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// actionProcessor runs write actions on the operator pool.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                    string `json:"id" doc:"Transaction UUID"`
	UserID                string `json:"userID" doc:"User UUID"`
	ProfileName           string `json:"profileName" doc:"Budget profile"`
	PeriodID              string `json:"periodID,omitempty" doc:"Budget period UUID, absent for bypass inserts"`
	Month                 int    `json:"month" doc:"Budget month"`
	Year                  int    `json:"year" doc:"Budget year"`
	Type                  string `json:"type" doc:"Transaction type"`
	Category              string `json:"category" doc:"Budget category"`
	Amount                string `json:"amount" doc:"Decimal amount"`
	Description           string `json:"description,omitempty" doc:"Description"`
	Notes                 string `json:"notes,omitempty" doc:"Free-form notes"`
	TransactionDate       string `json:"transactionDate" doc:"RFC3339 transaction date"`
	PaymentType           string `json:"paymentType,omitempty" doc:"Payment method"`
	SpentFor              string `json:"spentFor,omitempty" doc:"Who or what the money was spent for"`
	Tag                   string `json:"tag,omitempty" doc:"Free-form tag"`
	PortfolioID           string `json:"portfolioID,omitempty" doc:"Investment portfolio UUID"`
	InvestmentType        string `json:"investmentType,omitempty" doc:"Investment type"`
	RefundFor             string `json:"refundFor,omitempty" doc:"UUID of the transaction this refunds"`
	OriginalTransactionID string `json:"originalTransactionID,omitempty" doc:"UUID of the refund recorded against this transaction"`
	Status                string `json:"status" doc:"Transaction status"`
	CreatedAt             string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionDraftBody is the request body shared by the create and bypass
// endpoints.
type TransactionDraftBody struct {
	UserID          string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
	ProfileName     string `json:"profileName" required:"true" minLength:"1" doc:"Budget profile"`
	Month           int    `json:"month" doc:"Budget month 1-12; out of range values fall back to the current month"`
	Year            int    `json:"year" doc:"Budget year 2020-2050; out of range values fall back to the current year"`
	Type            string `json:"type" required:"true" enum:"expense,income,refund,investment,savings,transfer" doc:"Transaction type"`
	Category        string `json:"category" required:"true" enum:"need,want,savings,investments,unplanned" doc:"Budget category"`
	Amount          string `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Description     string `json:"description,omitempty" doc:"Description"`
	Notes           string `json:"notes,omitempty" doc:"Free-form notes"`
	TransactionDate string `json:"transactionDate,omitempty" format:"date-time" doc:"RFC3339 transaction date, defaults to today"`
	PaymentType     string `json:"paymentType,omitempty" enum:"cash,card,upi,netbanking,cheque,other" doc:"Payment method"`
	SpentFor        string `json:"spentFor,omitempty" doc:"Who or what the money was spent for"`
	Tag             string `json:"tag,omitempty" doc:"Free-form tag"`
	PortfolioID     string `json:"portfolioID,omitempty" format:"uuid" doc:"Investment portfolio UUID"`
	InvestmentType  string `json:"investmentType,omitempty" doc:"Investment type"`
}

// parseDraft parses and validates the API input. Enum and format checks are
// done by the schema; the service validates the rest.
func parseDraft(body TransactionDraftBody) (service.TransactionDraft, error) {
	owner, err := respond.Owner(body.UserID, body.ProfileName)
	if err != nil {
		return service.TransactionDraft{}, err
	}
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	draft := service.TransactionDraft{
		Owner:          owner,
		Month:          body.Month,
		Year:           body.Year,
		Type:           service.TransactionType(body.Type),
		Category:       service.Category(body.Category),
		Amount:         amount,
		Description:    body.Description,
		Notes:          body.Notes,
		PaymentType:    service.PaymentType(body.PaymentType),
		SpentFor:       body.SpentFor,
		Tag:            body.Tag,
		InvestmentType: body.InvestmentType,
	}

	if body.TransactionDate != "" {
		draft.TransactionDate, err = time.Parse(time.RFC3339, body.TransactionDate)
		if err != nil {
			return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid transactionDate", err)
		}
	}
	if body.PortfolioID != "" {
		portfolioID, err := uuid.FromString(body.PortfolioID)
		if err != nil {
			return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid portfolioID", err)
		}
		draft.PortfolioID = uuid.NullUUID{UUID: portfolioID, Valid: true}
	}

	return draft, nil
}

func nullUUIDString(id uuid.NullUUID) string {
	if !id.Valid {
		return ""
	}
	return id.UUID.String()
}

func toResponse(tx service.Transaction) Transaction {
	return Transaction{
		ID:                    tx.ID.String(),
		UserID:                tx.Owner.UserID.String(),
		ProfileName:           tx.Owner.ProfileName,
		PeriodID:              nullUUIDString(tx.PeriodID),
		Month:                 tx.Month,
		Year:                  tx.Year,
		Type:                  string(tx.Type),
		Category:              string(tx.Category),
		Amount:                tx.Amount.String(),
		Description:           tx.Description,
		Notes:                 tx.Notes,
		TransactionDate:       tx.TransactionDate.Format(time.RFC3339),
		PaymentType:           string(tx.PaymentType),
		SpentFor:              tx.SpentFor,
		Tag:                   tx.Tag,
		PortfolioID:           nullUUIDString(tx.PortfolioID),
		InvestmentType:        tx.InvestmentType,
		RefundFor:             nullUUIDString(tx.RefundFor),
		OriginalTransactionID: nullUUIDString(tx.OriginalTransactionID),
		Status:                string(tx.Status),
		CreatedAt:             tx.CreatedAt.Format(time.RFC3339),
	}
}
