package memstore

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

type transactionTable struct{ s *Store }

func (t *transactionTable) FindByID(_ context.Context, id uuid.UUID) (*sqlconfig.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("transactions.FindByID"); err != nil {
		return nil, err
	}
	tx, ok := t.s.transactions[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	cp := *tx
	return &cp, nil
}

func (t *transactionTable) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("transactions.Insert"); err != nil {
		return nil, err
	}
	if create.BudgetPeriodID.Valid {
		if _, ok := t.s.periods[create.BudgetPeriodID.UUID]; !ok {
			return nil, stalePeriodViolation()
		}
	}

	now := t.s.now()
	tx := &sqlconfig.Transaction{
		ID:              newID(),
		UserID:          create.UserID,
		ProfileName:     create.ProfileName,
		BudgetPeriodID:  create.BudgetPeriodID,
		BudgetMonth:     create.BudgetMonth,
		BudgetYear:      create.BudgetYear,
		Type:            create.Type,
		Category:        create.Category,
		Amount:          create.Amount,
		Description:     create.Description,
		Notes:           create.Notes,
		TransactionDate: create.TransactionDate,
		PaymentType:     create.PaymentType,
		SpentFor:        create.SpentFor,
		Tag:             create.Tag,
		PortfolioID:     create.PortfolioID,
		InvestmentType:  create.InvestmentType,
		RefundFor:       create.RefundFor,
		Status:          create.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	t.s.transactions[tx.ID] = tx
	cp := *tx
	return &cp, nil
}

func (t *transactionTable) List(_ context.Context, filter *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()
	if err := t.s.fault("transactions.List"); err != nil {
		return nil, err
	}

	var rows []*sqlconfig.Transaction
	for _, tx := range t.s.transactions {
		if !t.s.scopeMatches(tx.UserID, tx.ProfileName, tx.BudgetMonth, tx.BudgetYear, filter.Scope) {
			continue
		}
		if tx.IsDeleted && !filter.IncludeDeleted {
			continue
		}
		if refundFor, ok := filter.RefundFor.Get(); ok && (!tx.RefundFor.Valid || tx.RefundFor.UUID != refundFor) {
			continue
		}
		if filter.MaxCreationTime != nil && tx.CreatedAt.After(*filter.MaxCreationTime) {
			continue
		}
		cp := *tx
		rows = append(rows, &cp)
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].TransactionDate.Equal(rows[j].TransactionDate) {
			return rows[i].TransactionDate.After(rows[j].TransactionDate)
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(rows) {
			return nil, nil
		}
		rows = rows[filter.Offset:]
	}
	if filter.Limit > 0 && len(rows) > filter.Limit {
		rows = rows[:filter.Limit]
	}
	return rows, nil
}

func (t *transactionTable) Update(_ context.Context, owner sqlconfig.Owner, id uuid.UUID, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("transactions.Update"); err != nil {
		return nil, err
	}
	tx, ok := t.s.transactions[id]
	if !ok || !t.s.ownerMatches(tx.UserID, tx.ProfileName, owner) {
		return nil, sqlconfig.ErrNotFound
	}

	if v, ok := update.Status.Get(); ok {
		tx.Status = v
	}
	if v, ok := update.OriginalTransactionID.Get(); ok {
		tx.OriginalTransactionID = uuid.NullUUID{UUID: v, Valid: true}
	}
	if v, ok := update.Description.Get(); ok {
		tx.Description = sql.NullString{String: v, Valid: true}
	}
	if v, ok := update.Notes.Get(); ok {
		tx.Notes = sql.NullString{String: v, Valid: true}
	}
	if v, ok := update.Category.Get(); ok {
		tx.Category = v
	}
	if v, ok := update.Amount.Get(); ok {
		tx.Amount = v
	}
	tx.UpdatedAt = t.s.now()

	cp := *tx
	return &cp, nil
}

func (t *transactionTable) SoftDelete(_ context.Context, owner sqlconfig.Owner, id uuid.UUID, at time.Time) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("transactions.SoftDelete"); err != nil {
		return err
	}
	tx, ok := t.s.transactions[id]
	if !ok || !t.s.ownerMatches(tx.UserID, tx.ProfileName, owner) {
		return sqlconfig.ErrNotFound
	}
	tx.IsDeleted = true
	tx.DeletedAt = sql.NullTime{Time: at, Valid: true}
	return nil
}

func (t *transactionTable) SoftDeleteInPeriod(_ context.Context, scope sqlconfig.PeriodScope, at time.Time) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("transactions.SoftDeleteInPeriod"); err != nil {
		return 0, err
	}
	var n int64
	for _, tx := range t.s.transactions {
		if tx.IsDeleted || !t.s.scopeMatches(tx.UserID, tx.ProfileName, tx.BudgetMonth, tx.BudgetYear, scope) {
			continue
		}
		tx.IsDeleted = true
		tx.DeletedAt = sql.NullTime{Time: at, Valid: true}
		n++
	}
	return n, nil
}

func (t *transactionTable) DeleteByPeriodID(_ context.Context, periodID uuid.UUID) (int64, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if err := t.s.fault("transactions.DeleteByPeriodID"); err != nil {
		return 0, err
	}
	var n int64
	for id, tx := range t.s.transactions {
		if tx.BudgetPeriodID.Valid && tx.BudgetPeriodID.UUID == periodID {
			delete(t.s.transactions, id)
			n++
		}
	}
	return n, nil
}
