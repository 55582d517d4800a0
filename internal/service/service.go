package service

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
)

// Options tune the services. Zero values fall back to the standard logger,
// the wall clock and DefaultRetryPolicy.
type Options struct {
	Logger      logrus.FieldLogger
	Clock       Clock
	RetryPolicy RetryPolicy
}

// Service holds all business logic services.
type Service struct {
	Resolver    *PeriodResolver
	Committer   *TransactionCommitter
	Refunds     *RefundProcessor
	Budget      *BudgetService
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	policy := opts.RetryPolicy
	if policy.MaxAttempts == 0 && policy.Retryable == nil {
		policy = DefaultRetryPolicy()
	}

	resolver := NewPeriodResolver(store, log, now)
	committer := NewTransactionCommitter(store, resolver, policy, log, now)

	return &Service{
		Resolver:    resolver,
		Committer:   committer,
		Refunds:     NewRefundProcessor(store, committer, log, now),
		Budget:      NewBudgetService(store, resolver, log, now),
		Transaction: NewTransactionService(store, resolver),
	}
}
