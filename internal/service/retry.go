package service

import (
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// RetryPolicy bounds how often the committer re-attempts an insert. MaxAttempts
// counts the first attempt, so 2 means one retry.
type RetryPolicy struct {
	MaxAttempts int
	Retryable   func(error) bool
}

// DefaultRetryPolicy retries once when the period a transaction was bound to
// disappeared before the insert.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 2,
		Retryable:   sqlconfig.IsStalePeriodViolation,
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

func (p RetryPolicy) retryable(err error) bool {
	return p.Retryable != nil && p.Retryable(err)
}
