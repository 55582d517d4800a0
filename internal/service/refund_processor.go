package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

const refundDescriptionPrefix = "Refund: "

// RefundRequest describes a refund against an existing transaction. An empty
// Category keeps the original's category.
type RefundRequest struct {
	Owner      Owner
	OriginalID uuid.UUID
	Amount     decimal.Decimal
	Reason     string
	Category   Category
}

// RefundResult holds the refund row and the original after its status change.
type RefundResult struct {
	Refund   Transaction
	Original Transaction
}

// RefundProcessor records compensating refund transactions.
type RefundProcessor struct {
	committer    *TransactionCommitter
	transactions sqlconfig.ITransactionTable
	log          logrus.FieldLogger
	now          Clock
}

func NewRefundProcessor(store *storage.Storage, committer *TransactionCommitter, log logrus.FieldLogger, now Clock) *RefundProcessor {
	return &RefundProcessor{
		committer:    committer,
		transactions: store.Transactions,
		log:          log,
		now:          now,
	}
}

// Refund writes a refund transaction in the original's budget month and then
// marks the original refunded once its live refunds add up to the original
// amount, partially refunded before that. The original's
// original_transaction_id points at the latest refund; every refund keeps its
// own refund_for link. The two writes are not atomic: if the second fails the
// returned *RefundError names the refund row already written.
func (p *RefundProcessor) Refund(ctx context.Context, req RefundRequest) (*RefundResult, error) {
	log := p.log.WithFields(logrus.Fields{
		"userID":      req.Owner.UserID.String(),
		"profileName": req.Owner.ProfileName,
		"originalID":  req.OriginalID.String(),
		"amount":      req.Amount.String(),
	})

	row, err := p.transactions.FindByID(ctx, req.OriginalID)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrNotFound) {
			err = ErrTransactionNotFound
		}
		return nil, &RefundError{Stage: RefundStageLookup, OriginalID: req.OriginalID, Err: err}
	}
	if !ownedBy(row, req.Owner) {
		return nil, &RefundError{Stage: RefundStageLookup, OriginalID: req.OriginalID, Err: ErrTransactionNotFound}
	}
	original := fromRow(row)

	refunded, err := p.refundedTotal(ctx, req.Owner, original)
	if err != nil {
		return nil, &RefundError{Stage: RefundStageLookup, OriginalID: req.OriginalID, Err: err}
	}
	if err := validateRefund(req, original, refunded); err != nil {
		return nil, &RefundError{Stage: RefundStageValidation, OriginalID: req.OriginalID, Err: err}
	}

	category := req.Category
	if category == "" {
		category = original.Category
	}
	refund, err := p.committer.AddTransaction(ctx, TransactionDraft{
		Owner:           req.Owner,
		Month:           original.Month,
		Year:            original.Year,
		Type:            TransactionTypeRefund,
		Category:        category,
		Amount:          req.Amount,
		Description:     refundDescriptionPrefix + req.Reason,
		TransactionDate: p.now(),
		Status:          StatusActive,
		RefundFor:       uuid.NullUUID{UUID: original.ID, Valid: true},
	})
	if err != nil {
		return nil, &RefundError{Stage: RefundStageInsert, OriginalID: req.OriginalID, Err: err}
	}

	status := StatusPartialRefund
	if refunded.Add(req.Amount).Equal(original.Amount) {
		status = StatusRefunded
	}
	updated, err := p.transactions.Update(ctx, req.Owner.storage(), original.ID, &sqlconfig.TransactionUpdate{
		Status:                omit.From(string(status)),
		OriginalTransactionID: omit.From(refund.ID),
	})
	if err != nil {
		refundErr := &RefundError{
			Stage:      RefundStageStatusUpdate,
			OriginalID: req.OriginalID,
			RefundID:   refund.ID,
			Err:        err,
		}
		log.WithFields(refundErr.Fields()).WithError(err).Error("RefundProcessor.Refund.statusUpdateFailed")
		return nil, refundErr
	}

	log.WithFields(logrus.Fields{
		"refundID":      refund.ID.String(),
		"status":        string(status),
		"refundedTotal": refunded.Add(req.Amount).String(),
	}).Info("RefundProcessor.Refund.complete")
	return &RefundResult{Refund: *refund, Original: fromRow(updated)}, nil
}

// refundedTotal sums the live refunds already recorded against original.
// Refunds are written into the original's budget month.
func (p *RefundProcessor) refundedTotal(ctx context.Context, owner Owner, original Transaction) (decimal.Decimal, error) {
	rows, err := p.transactions.List(ctx, &sqlconfig.TransactionFilter{
		Scope:     owner.scope(original.Month, original.Year),
		RefundFor: omit.From(original.ID),
	})
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total, nil
}

func validateRefund(req RefundRequest, original Transaction, refunded decimal.Decimal) error {
	remaining := original.Amount.Sub(refunded)
	switch {
	case !req.Amount.IsPositive():
		return &ValidationError{Field: "amount", Message: "must be greater than zero"}
	case strings.TrimSpace(req.Reason) == "":
		return &ValidationError{Field: "reason", Message: "is required"}
	case req.Category != "" && !req.Category.Valid():
		return &ValidationError{Field: "category", Message: "unknown category"}
	case original.Type == TransactionTypeRefund:
		return &ValidationError{Field: "originalID", Message: "refunds cannot be refunded"}
	case original.IsDeleted:
		return &ValidationError{Field: "originalID", Message: "transaction is deleted"}
	case original.Status == StatusRefunded:
		return &ValidationError{Field: "originalID", Message: "transaction is already refunded"}
	case original.Status == StatusCancelled:
		return &ValidationError{Field: "originalID", Message: "transaction is cancelled"}
	case req.Amount.GreaterThan(remaining):
		return &ValidationError{Field: "amount", Message: "exceeds the refundable amount " + remaining.String()}
	}
	return nil
}

// ownedBy reports whether the row belongs to owner. Rows read from a schema
// without profiles carry an empty profile name and match on user alone.
func ownedBy(row *sqlconfig.Transaction, owner Owner) bool {
	if row.UserID != owner.UserID {
		return false
	}
	return row.ProfileName == "" || row.ProfileName == owner.ProfileName
}
