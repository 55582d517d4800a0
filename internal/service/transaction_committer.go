package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// TransactionCommitter writes transactions bound to a resolved period.
type TransactionCommitter struct {
	resolver     *PeriodResolver
	periods      sqlconfig.IPeriodTable
	transactions sqlconfig.ITransactionTable
	policy       RetryPolicy
	log          logrus.FieldLogger
	now          Clock
}

func NewTransactionCommitter(store *storage.Storage, resolver *PeriodResolver, policy RetryPolicy, log logrus.FieldLogger, now Clock) *TransactionCommitter {
	return &TransactionCommitter{
		resolver:     resolver,
		periods:      store.Periods,
		transactions: store.Transactions,
		policy:       policy,
		log:          log,
		now:          now,
	}
}

// AddTransaction resolves the draft's period and commits the draft against it.
func (c *TransactionCommitter) AddTransaction(ctx context.Context, draft TransactionDraft) (*Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	periodID, err := c.resolver.Resolve(ctx, draft.Owner.UserID, draft.Month, draft.Year)
	if err != nil {
		return nil, err
	}
	return c.Commit(ctx, draft, periodID)
}

// Commit inserts the draft bound to periodID. If the period vanished between
// resolution and insert, it is replaced by a fresh period for the same key and
// the insert is retried under the retry policy. The returned transaction may
// therefore reference a different period than the one passed in.
func (c *TransactionCommitter) Commit(ctx context.Context, draft TransactionDraft, periodID uuid.UUID) (*Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	key, _ := c.resolver.NormalizeKey(draft.Owner.UserID, draft.Month, draft.Year)
	create := toCreate(draft, key, uuid.NullUUID{UUID: periodID, Valid: true}, c.now())

	log := c.log.WithFields(logrus.Fields{
		"userID":      draft.Owner.UserID.String(),
		"profileName": draft.Owner.ProfileName,
		"month":       key.Month,
		"year":        key.Year,
	})

	maxAttempts := c.policy.attempts()
	for attempt := 1; ; attempt++ {
		row, err := c.transactions.Insert(ctx, create)
		if err == nil {
			tx := fromRow(row)
			return &tx, nil
		}

		if attempt >= maxAttempts || !c.policy.retryable(err) {
			commitErr := &CommitError{
				Owner:    draft.Owner,
				Key:      key,
				PeriodID: create.BudgetPeriodID,
				Attempts: attempt,
				Payload:  create,
				Err:      err,
			}
			log.WithFields(commitErr.Fields()).WithError(err).Error("TransactionCommitter.Commit.failed")
			return nil, commitErr
		}

		stale := create.BudgetPeriodID.UUID
		log.WithError(err).WithFields(logrus.Fields{
			"periodID": stale.String(),
			"attempt":  attempt,
		}).Warn("TransactionCommitter.Commit.stalePeriod")

		freshID, recoverErr := c.replacePeriod(ctx, log, key, stale)
		if recoverErr != nil {
			return nil, &CommitError{
				Owner:    draft.Owner,
				Key:      key,
				PeriodID: create.BudgetPeriodID,
				Attempts: attempt,
				Payload:  create,
				Err:      recoverErr,
			}
		}
		create.BudgetPeriodID = uuid.NullUUID{UUID: freshID, Valid: true}
	}
}

func (c *TransactionCommitter) replacePeriod(ctx context.Context, log logrus.FieldLogger, key PeriodKey, stale uuid.UUID) (uuid.UUID, error) {
	if err := c.periods.Delete(ctx, stale); err != nil {
		log.WithError(err).WithField("periodID", stale.String()).Warn("TransactionCommitter.replacePeriod.deleteFailed")
	}
	freshID, err := c.resolver.CreatePeriod(ctx, key)
	if err != nil {
		return uuid.Nil, err
	}
	log.WithFields(logrus.Fields{
		"stalePeriodID": stale.String(),
		"periodID":      freshID.String(),
	}).Info("TransactionCommitter.replacePeriod.recreated")
	return freshID, nil
}

// CommitBypass inserts the draft without a period reference. It skips the
// resolver and does not retry; it exists for manual recovery when period
// resolution itself keeps failing.
func (c *TransactionCommitter) CommitBypass(ctx context.Context, draft TransactionDraft) (*Transaction, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	key, _ := c.resolver.NormalizeKey(draft.Owner.UserID, draft.Month, draft.Year)
	create := toCreate(draft, key, uuid.NullUUID{}, c.now())

	row, err := c.transactions.Insert(ctx, create)
	if err != nil {
		return nil, &CommitError{
			Owner:    draft.Owner,
			Key:      key,
			Attempts: 1,
			Payload:  create,
			Err:      err,
		}
	}
	tx := fromRow(row)
	c.log.WithFields(logrus.Fields{
		"userID":        draft.Owner.UserID.String(),
		"transactionID": tx.ID.String(),
		"month":         key.Month,
		"year":          key.Year,
	}).Warn("TransactionCommitter.CommitBypass.committedWithoutPeriod")
	return &tx, nil
}
