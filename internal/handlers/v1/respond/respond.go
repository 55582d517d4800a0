// Package respond holds the request parsing and error mapping shared by the
// v1 handlers.
package respond

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator"
	"github.com/carson-networks/budget-reconciler/internal/service"
)

// Error maps a service error onto an HTTP error and records its diagnostics on
// the request's LogData.
func Error(ctx context.Context, message string, err error) error {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("error", err.Error())
		logData.AddFields(service.ErrorFields(err))
	}

	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return huma.NewError(http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, service.ErrTransactionNotFound), errors.Is(err, service.ErrPortfolioNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, message, err)
	case errors.Is(err, operator.ErrStopped):
		return huma.NewError(http.StatusServiceUnavailable, message, err)
	}
	return huma.NewError(http.StatusInternalServerError, message+": "+err.Error(), err)
}

// Owner parses the user and profile that scope a request.
func Owner(userID, profileName string) (service.Owner, error) {
	id, err := uuid.FromString(userID)
	if err != nil {
		return service.Owner{}, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	if strings.TrimSpace(profileName) == "" {
		return service.Owner{}, huma.NewError(http.StatusBadRequest, "profileName is required")
	}
	return service.Owner{UserID: id, ProfileName: profileName}, nil
}

// UserID parses a user id.
func UserID(userID string) (uuid.UUID, error) {
	id, err := uuid.FromString(userID)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	return id, nil
}
