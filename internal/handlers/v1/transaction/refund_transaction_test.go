package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

func refundBody(userID uuid.UUID, amount string) RefundTransactionBody {
	return RefundTransactionBody{
		UserID:      userID.String(),
		ProfileName: "Household",
		Amount:      amount,
		Reason:      "duplicate charge",
	}
}

func TestHTTP_RefundTransaction_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	originalID := uuid.Must(uuid.NewV4())
	refundID := uuid.Must(uuid.NewV4())

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.RefundTransaction) bool {
		return a.Request.OriginalID == originalID &&
			a.Request.Owner.UserID == userID &&
			a.Request.Amount.Equal(decimal.NewFromInt(40)) &&
			a.Request.Reason == "duplicate charge" &&
			a.Request.Category == ""
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.RefundTransaction)
		a.Result = &service.RefundResult{
			Refund: service.Transaction{
				ID:        refundID,
				Type:      service.TransactionTypeRefund,
				Amount:    a.Request.Amount,
				RefundFor: uuid.NullUUID{UUID: originalID, Valid: true},
				Status:    service.StatusActive,
			},
			Original: service.Transaction{
				ID:                    originalID,
				Amount:                a.Request.Amount,
				OriginalTransactionID: uuid.NullUUID{UUID: refundID, Valid: true},
				Status:                service.StatusRefunded,
			},
		}
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/transaction/"+originalID.String()+"/refund", refundBody(userID, "40"))

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body RefundTransactionResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, refundID.String(), body.Refund.ID)
	assert.Equal(t, originalID.String(), body.Refund.RefundFor)
	assert.Equal(t, "refunded", body.Original.Status)
	assert.Equal(t, refundID.String(), body.Original.OriginalTransactionID)
	op.AssertExpectations(t)
}

func TestHTTP_RefundTransaction_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "validation",
			err:    &service.RefundError{Stage: service.RefundStageValidation, Err: &service.ValidationError{Field: "amount", Message: "exceeds the original amount 10"}},
			status: http.StatusBadRequest,
		},
		{
			name:   "original not found",
			err:    &service.RefundError{Stage: service.RefundStageLookup, Err: service.ErrTransactionNotFound},
			status: http.StatusNotFound,
		},
		{
			name:   "status update failed",
			err:    &service.RefundError{Stage: service.RefundStageStatusUpdate, RefundID: uuid.Must(uuid.NewV4()), Err: errors.New("connection reset")},
			status: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := new(mockOperator)
			op.On("Process", mock.Anything, mock.Anything).Return(tt.err)

			resp := newTestAPI(t, op).Post("/v1/transaction/"+uuid.Must(uuid.NewV4()).String()+"/refund",
				refundBody(uuid.Must(uuid.NewV4()), "10"))

			assert.Equal(t, tt.status, resp.Code)
		})
	}
}

func TestHTTP_RefundTransaction_InvalidAmount(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op).Post("/v1/transaction/"+uuid.Must(uuid.NewV4()).String()+"/refund",
		refundBody(uuid.Must(uuid.NewV4()), "ten"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_RefundTransaction_InvalidPathID(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op).Post("/v1/transaction/nope/refund", refundBody(uuid.Must(uuid.NewV4()), "10"))

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}
