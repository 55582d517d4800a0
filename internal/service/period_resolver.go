package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

const (
	minPeriodYear = 2020
	maxPeriodYear = 2050
	// storedYearFloor is the lowest year a stored row may carry before it is
	// considered damaged.
	storedYearFloor = 2000
)

var errNoIdentifier = errors.New("insert returned no identifier")

// PeriodResolver maps (user, month, year) onto the identifier of a single valid
// budget period, creating or repairing the row as needed.
type PeriodResolver struct {
	periods      sqlconfig.IPeriodTable
	transactions sqlconfig.ITransactionTable
	configs      sqlconfig.IBudgetConfigTable
	portfolios   sqlconfig.IPortfolioTable
	log          logrus.FieldLogger
	now          Clock
}

func NewPeriodResolver(store *storage.Storage, log logrus.FieldLogger, now Clock) *PeriodResolver {
	return &PeriodResolver{
		periods:      store.Periods,
		transactions: store.Transactions,
		configs:      store.BudgetConfigs,
		portfolios:   store.Portfolios,
		log:          log,
		now:          now,
	}
}

// NormalizeKey substitutes the current month and year when the requested ones
// are out of range. The second result reports whether a substitution happened.
func (r *PeriodResolver) NormalizeKey(userID uuid.UUID, month, year int) (PeriodKey, bool) {
	if month >= 1 && month <= 12 && year >= minPeriodYear && year <= maxPeriodYear {
		return PeriodKey{UserID: userID, Month: month, Year: year}, false
	}
	now := r.now()
	return PeriodKey{UserID: userID, Month: int(now.Month()), Year: now.Year()}, true
}

// Resolve returns the id of the active period for the key, creating it when
// absent. A damaged row is deleted together with the rows bound to it and
// recreated; a row whose month or year drifted is corrected in place. The
// returned period is re-read and guaranteed to match the key.
func (r *PeriodResolver) Resolve(ctx context.Context, userID uuid.UUID, month, year int) (uuid.UUID, error) {
	key, corrected := r.NormalizeKey(userID, month, year)
	log := r.log.WithFields(logrus.Fields{
		"userID": userID.String(),
		"month":  key.Month,
		"year":   key.Year,
	})
	if corrected {
		log.WithFields(logrus.Fields{
			"requestedMonth": month,
			"requestedYear":  year,
		}).Warn("PeriodResolver.Resolve.invalidPeriodSubstituted")
	}

	var periodID uuid.UUID
	row, err := r.periods.FindByKey(ctx, key.UserID, key.Month, key.Year)
	switch {
	case err == nil:
		periodID = row.ID
	case errors.Is(err, sqlconfig.ErrNotFound):
		periodID, err = r.CreatePeriod(ctx, key)
		if err != nil {
			return uuid.Nil, err
		}
		log.WithField("periodID", periodID.String()).Info("PeriodResolver.Resolve.created")
	default:
		return uuid.Nil, &ResolutionError{Kind: ErrLookup, Op: "find period", Key: key, Err: err}
	}

	periodID, err = r.ensureIntegrity(ctx, log, key, periodID)
	if err != nil {
		return uuid.Nil, err
	}

	if err := r.validate(ctx, key, periodID); err != nil {
		return uuid.Nil, err
	}
	return periodID, nil
}

// CreatePeriod inserts an active period for the key. When a concurrent caller
// inserted the same key first, the existing row's id is returned.
func (r *PeriodResolver) CreatePeriod(ctx context.Context, key PeriodKey) (uuid.UUID, error) {
	id, err := r.periods.Insert(ctx, &sqlconfig.BudgetPeriodCreate{
		UserID: key.UserID,
		Month:  key.Month,
		Year:   key.Year,
	})
	if err != nil {
		if !sqlconfig.IsUniqueViolation(err) {
			return uuid.Nil, &ResolutionError{Kind: ErrPeriodCreation, Op: "create period", Key: key, Err: err}
		}
		row, findErr := r.periods.FindByKey(ctx, key.UserID, key.Month, key.Year)
		if findErr != nil {
			return uuid.Nil, &ResolutionError{
				Kind: ErrPeriodCreation,
				Op:   "create period",
				Key:  key,
				Err:  errors.Join(err, findErr),
			}
		}
		r.log.WithFields(logrus.Fields{
			"userID":   key.UserID.String(),
			"month":    key.Month,
			"year":     key.Year,
			"periodID": row.ID.String(),
		}).Info("PeriodResolver.CreatePeriod.concurrentInsert")
		return row.ID, nil
	}
	if id == uuid.Nil {
		return uuid.Nil, &ResolutionError{Kind: ErrPeriodCreation, Op: "create period", Key: key, Err: errNoIdentifier}
	}
	return id, nil
}

func (r *PeriodResolver) ensureIntegrity(ctx context.Context, log logrus.FieldLogger, key PeriodKey, periodID uuid.UUID) (uuid.UUID, error) {
	log = log.WithField("periodID", periodID.String())

	row, err := r.periods.FindByID(ctx, periodID)
	if err != nil && !errors.Is(err, sqlconfig.ErrNotFound) {
		return uuid.Nil, &ResolutionError{Kind: ErrLookup, Op: "check period", Key: key, PeriodID: periodID, Err: err}
	}

	month, year, ok := storedMonthYear(row)
	if !ok {
		return r.repair(ctx, log, key, periodID)
	}

	if month != key.Month || year != key.Year {
		log.WithFields(logrus.Fields{
			"storedMonth": month,
			"storedYear":  year,
		}).Warn("PeriodResolver.Resolve.mismatchCorrected")
		if err := r.periods.UpdateMonthYear(ctx, periodID, key.Month, key.Year); err != nil {
			return uuid.Nil, &ResolutionError{Kind: ErrPeriodRepair, Op: "correct period", Key: key, PeriodID: periodID, Err: err}
		}
	}
	return periodID, nil
}

// repair removes a damaged period with the rows bound to it and creates a
// fresh one. Cleanup failures are logged and do not stop the repair.
func (r *PeriodResolver) repair(ctx context.Context, log logrus.FieldLogger, key PeriodKey, periodID uuid.UUID) (uuid.UUID, error) {
	log.Warn("PeriodResolver.Repair.corruptedPeriod")

	cascade := []struct {
		table  string
		delete func(context.Context, uuid.UUID) (int64, error)
	}{
		{sqlconfig.TableTransactions, r.transactions.DeleteByPeriodID},
		{sqlconfig.TableBudgetConfigs, r.configs.DeleteByPeriodID},
		{sqlconfig.TableInvestmentPortfolios, r.portfolios.DeleteByPeriodID},
	}
	for _, c := range cascade {
		n, err := c.delete(ctx, periodID)
		if err != nil {
			log.WithError(err).WithField("table", c.table).Warn("PeriodResolver.Repair.cascadeFailed")
			continue
		}
		if n > 0 {
			log.WithFields(logrus.Fields{"table": c.table, "rows": n}).Info("PeriodResolver.Repair.cascadeDeleted")
		}
	}

	if err := r.periods.Delete(ctx, periodID); err != nil {
		log.WithError(err).Warn("PeriodResolver.Repair.deleteFailed")
	}

	newID, err := r.CreatePeriod(ctx, key)
	if err != nil {
		var creation *ResolutionError
		if errors.As(err, &creation) {
			err = creation.Err
		}
		return uuid.Nil, &ResolutionError{Kind: ErrPeriodRepair, Op: "recreate period", Key: key, PeriodID: periodID, Err: err}
	}
	log.WithField("newPeriodID", newID.String()).Info("PeriodResolver.Repair.recreated")
	return newID, nil
}

func (r *PeriodResolver) validate(ctx context.Context, key PeriodKey, periodID uuid.UUID) error {
	row, err := r.periods.FindByID(ctx, periodID)
	if err != nil {
		return &ResolutionError{Kind: ErrPeriodValidation, Op: "validate period", Key: key, PeriodID: periodID, Err: err}
	}
	month, year, ok := storedMonthYear(row)
	if !ok {
		return &ResolutionError{
			Kind:     ErrPeriodValidation,
			Op:       "validate period",
			Key:      key,
			PeriodID: periodID,
			Err:      fmt.Errorf("stored month %q year %q are invalid", row.Month.String, row.Year.String),
		}
	}
	if month != key.Month || year != key.Year {
		return &ResolutionError{
			Kind:     ErrPeriodValidation,
			Op:       "validate period",
			Key:      key,
			PeriodID: periodID,
			Err:      fmt.Errorf("stored period %d/%d does not match", month, year),
		}
	}
	return nil
}

// storedMonthYear parses the raw month and year of a row. ok is false when the
// row is missing or either value is absent, non-numeric or out of range.
func storedMonthYear(row *sqlconfig.BudgetPeriod) (month, year int, ok bool) {
	if row == nil || !row.Month.Valid || !row.Year.Valid {
		return 0, 0, false
	}
	month, err := strconv.Atoi(row.Month.String)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(row.Year.String)
	if err != nil || year <= storedYearFloor {
		return 0, 0, false
	}
	return month, year, true
}
