package period

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

type mockOperator struct {
	mock.Mock
}

func (m *mockOperator) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewResolvePeriodHandler(op).Register(api)
	return api
}

func TestHTTP_ResolvePeriod_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	periodID := uuid.Must(uuid.NewV4())

	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a *actions.ResolvePeriod) bool {
		return a.UserID == userID && a.Month == 13 && a.Year == 2019
	})).Run(func(args mock.Arguments) {
		a := args.Get(1).(*actions.ResolvePeriod)
		a.PeriodID = periodID
		a.Key = service.PeriodKey{UserID: userID, Month: 6, Year: 2025}
	}).Return(nil)

	resp := newTestAPI(t, op).Post("/v1/period/resolve", ResolvePeriodBody{
		UserID: userID.String(),
		Month:  13,
		Year:   2019,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ResolvePeriodResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, periodID.String(), body.PeriodID)
	assert.Equal(t, 6, body.Month)
	assert.Equal(t, 2025, body.Year)
	assert.True(t, body.Corrected)
	op.AssertExpectations(t)
}

func TestHTTP_ResolvePeriod_InvalidUser(t *testing.T) {
	op := new(mockOperator)

	resp := newTestAPI(t, op).Post("/v1/period/resolve", ResolvePeriodBody{UserID: "nope", Month: 1, Year: 2025})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	op.AssertNotCalled(t, "Process", mock.Anything, mock.Anything)
}

func TestHTTP_ResolvePeriod_Failure(t *testing.T) {
	op := new(mockOperator)
	op.On("Process", mock.Anything, mock.Anything).Return(&service.ResolutionError{
		Kind: service.ErrPeriodRepair,
		Op:   "PeriodResolver.Repair",
	})

	resp := newTestAPI(t, op).Post("/v1/period/resolve", ResolvePeriodBody{
		UserID: uuid.Must(uuid.NewV4()).String(), Month: 1, Year: 2025,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "period could not be repaired")
}
