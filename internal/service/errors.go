package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-reconciler/internal/storage/sqlconfig"
)

// Resolution failure kinds. A *ResolutionError matches exactly one of them
// with errors.Is.
var (
	ErrLookup           = errors.New("period lookup failed")
	ErrPeriodCreation   = errors.New("period could not be created")
	ErrPeriodRepair     = errors.New("period could not be repaired")
	ErrPeriodValidation = errors.New("period failed validation")
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPortfolioNotFound   = errors.New("portfolio not found")
)

// spewConfig renders payloads on one line without pointer addresses.
var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// backendSuffix renders the backend diagnostics of err, if any.
func backendSuffix(err error) string {
	d := sqlconfig.DetailOf(err)
	if d.Empty() {
		return ""
	}
	parts := []string{"code=" + d.Code, "message=" + d.Message}
	if d.Detail != "" {
		parts = append(parts, "detail="+d.Detail)
	}
	if d.Hint != "" {
		parts = append(parts, "hint="+d.Hint)
	}
	return " [" + strings.Join(parts, " ") + "]"
}

func addBackendFields(fields logrus.Fields, err error) {
	d := sqlconfig.DetailOf(err)
	if d.Empty() {
		return
	}
	fields["backendCode"] = d.Code
	fields["backendMessage"] = d.Message
	if d.Detail != "" {
		fields["backendDetail"] = d.Detail
	}
	if d.Hint != "" {
		fields["backendHint"] = d.Hint
	}
	if d.Table != "" {
		fields["backendTable"] = d.Table
	}
}

func unwrapAll(errs ...error) []error {
	out := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError reports caller input that was rejected before touching the
// store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// =============================================================================
// RESOLUTION
// =============================================================================

// ResolutionError is returned when a valid period could not be produced for
// a key.
type ResolutionError struct {
	Kind     error
	Op       string
	Key      PeriodKey
	PeriodID uuid.UUID
	Err      error
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %v (user=%s month=%d year=%d", e.Op, e.Kind, e.Key.UserID, e.Key.Month, e.Key.Year)
	if e.PeriodID != uuid.Nil {
		fmt.Fprintf(&b, " period=%s", e.PeriodID)
	}
	b.WriteString(")")
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v%s", e.Err, backendSuffix(e.Err))
	}
	return b.String()
}

func (e *ResolutionError) Unwrap() []error {
	return unwrapAll(e.Kind, e.Err)
}

func (e *ResolutionError) Fields() logrus.Fields {
	fields := logrus.Fields{
		"op":     e.Op,
		"kind":   fmt.Sprint(e.Kind),
		"userID": e.Key.UserID.String(),
		"month":  e.Key.Month,
		"year":   e.Key.Year,
	}
	if e.PeriodID != uuid.Nil {
		fields["periodID"] = e.PeriodID.String()
	}
	addBackendFields(fields, e.Err)
	return fields
}

// =============================================================================
// COMMIT
// =============================================================================

// CommitError is returned when a transaction insert failed for good.
type CommitError struct {
	Owner    Owner
	Key      PeriodKey
	PeriodID uuid.NullUUID
	Attempts int
	Payload  *sqlconfig.TransactionCreate
	Err      error
}

func (e *CommitError) Error() string {
	period := "none"
	if e.PeriodID.Valid {
		period = e.PeriodID.UUID.String()
	}
	msg := fmt.Sprintf(
		"commit transaction: failed after %d attempt(s) (user=%s profile=%q month=%d year=%d period=%s)",
		e.Attempts, e.Owner.UserID, e.Owner.ProfileName, e.Key.Month, e.Key.Year, period,
	)
	if e.Payload != nil {
		msg += fmt.Sprintf(" payload={type=%s category=%s amount=%s date=%s}",
			e.Payload.Type, e.Payload.Category, e.Payload.Amount, e.Payload.TransactionDate.Format("2006-01-02"))
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v%s", e.Err, backendSuffix(e.Err))
	}
	return msg
}

func (e *CommitError) Unwrap() error {
	return e.Err
}

func (e *CommitError) Fields() logrus.Fields {
	fields := logrus.Fields{
		"userID":      e.Owner.UserID.String(),
		"profileName": e.Owner.ProfileName,
		"month":       e.Key.Month,
		"year":        e.Key.Year,
		"attempts":    e.Attempts,
	}
	if e.PeriodID.Valid {
		fields["periodID"] = e.PeriodID.UUID.String()
	}
	if e.Payload != nil {
		fields["payload"] = spewConfig.Sdump(e.Payload)
	}
	addBackendFields(fields, e.Err)
	return fields
}

// =============================================================================
// REFUND
// =============================================================================

type RefundStage string

const (
	RefundStageLookup       RefundStage = "lookup"
	RefundStageValidation   RefundStage = "validation"
	RefundStageInsert       RefundStage = "insert"
	RefundStageStatusUpdate RefundStage = "status_update"
)

// RefundError is returned when either leg of a refund failed. When the status
// update fails, RefundID names the refund row that was already written.
type RefundError struct {
	Stage      RefundStage
	OriginalID uuid.UUID
	RefundID   uuid.UUID
	Err        error
}

func (e *RefundError) Error() string {
	msg := fmt.Sprintf("refund %s: %s failed", e.OriginalID, e.Stage)
	if e.RefundID != uuid.Nil {
		msg += fmt.Sprintf(" (refund %s was recorded but the original was not updated)", e.RefundID)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v%s", e.Err, backendSuffix(e.Err))
	}
	return msg
}

func (e *RefundError) Unwrap() error {
	return e.Err
}

func (e *RefundError) Fields() logrus.Fields {
	fields := logrus.Fields{
		"stage":      string(e.Stage),
		"originalID": e.OriginalID.String(),
	}
	if e.RefundID != uuid.Nil {
		fields["orphanRefundID"] = e.RefundID.String()
	}
	addBackendFields(fields, e.Err)
	return fields
}

// ErrorFields returns the structured diagnostics of err for logging.
func ErrorFields(err error) logrus.Fields {
	var fielder interface{ Fields() logrus.Fields }
	if errors.As(err, &fielder) {
		return fielder.Fields()
	}
	fields := logrus.Fields{}
	addBackendFields(fields, err)
	return fields
}
