package service

import (
	"context"
	"time"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

const defaultLimit = 20

// TransactionService handles transaction reads.
type TransactionService struct {
	storage  *storage.Storage
	resolver *PeriodResolver
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, resolver *PeriodResolver) *TransactionService {
	return &TransactionService{storage: store, resolver: resolver}
}

// ListTransactions returns a page of the month's live transactions using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, owner Owner, month, year int, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	key, _ := s.resolver.NormalizeKey(owner.UserID, month, year)
	filter := &sqlconfig.TransactionFilter{
		Scope:           owner.scope(key.Month, key.Year),
		Limit:           limit + 1,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := latestCreation(rows)
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = fromRow(row)
	}

	return convertedTransactions, nextCursor, nil
}

// latestCreation is the upper bound locked in by the first page. Rows are
// ordered by transaction date, so the newest creation time can be anywhere.
func latestCreation(rows []*sqlconfig.Transaction) time.Time {
	var latest time.Time
	for _, row := range rows {
		if row.CreatedAt.After(latest) {
			latest = row.CreatedAt
		}
	}
	return latest
}
