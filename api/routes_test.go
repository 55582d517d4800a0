package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
	"github.com/carson-networks/budget-reconciler/internal/storage"
	"github.com/carson-networks/budget-reconciler/internal/storage/memstore"
)

func newTestRouter(t *testing.T) (http.Handler, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	store := storage.NewMemoryStorage(memstore.New())
	svc := service.NewService(store, service.Options{Logger: logger})
	op := operator.NewOperatorDelegator(svc, logger, 2)
	op.Start()
	t.Cleanup(op.Stop)
	return NewRouter(logger, store, svc, op), hook
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Status(t *testing.T) {
	router, hook := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/status", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Handler.Status.Complete", hook.LastEntry().Message)
}

func TestRouter_TransactionLifecycle(t *testing.T) {
	router, hook := newTestRouter(t)
	userID := uuid.Must(uuid.NewV4()).String()

	rec := do(t, router, http.MethodPost, "/v1/transaction", map[string]any{
		"userID":      userID,
		"profileName": "Household",
		"month":       3,
		"year":        2025,
		"type":        "expense",
		"category":    "want",
		"amount":      "80",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID       string `json:"id"`
		PeriodID string `json:"periodID"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.NotEmpty(t, created.PeriodID)

	rec = do(t, router, http.MethodPost, "/v1/transaction/"+created.ID+"/refund", map[string]any{
		"userID":      userID,
		"profileName": "Household",
		"amount":      "30",
		"reason":      "partial return",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"partial_refund"`)

	rec = do(t, router, http.MethodPost, "/v1/budget/snapshot", map[string]any{
		"userID":      userID,
		"profileName": "Household",
		"month":       3,
		"year":        2025,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var snapshot struct {
		Transactions []struct {
			Type string `json:"type"`
		} `json:"transactions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&snapshot))
	assert.Len(t, snapshot.Transactions, 2)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Handler.budget-snapshot.Complete", entry.Message)
}

func TestRouter_WipeRequiresConfirm(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/v1/user/wipe", map[string]any{
		"userID":  uuid.Must(uuid.NewV4()).String(),
		"confirm": false,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
