package user

import (
	"context"
	"net/http"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/handlers/v1/respond"
	"github.com/carson-networks/budget-reconciler/internal/logging"
	"github.com/carson-networks/budget-reconciler/internal/operator/actions"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type WipeInput struct {
	Body struct {
		UserID  string `json:"userID" required:"true" format:"uuid" doc:"User UUID"`
		Confirm bool   `json:"confirm" required:"true" doc:"Must be true; every row of the user is deleted"`
	}
}

type TableCount struct {
	Table   string `json:"table"`
	Deleted int64  `json:"deleted"`
}

type WipeOutput struct {
	Body struct {
		UserID  string       `json:"userID"`
		Deleted []TableCount `json:"deleted" doc:"Rows deleted per table"`
		Skipped []string     `json:"skipped" doc:"Optional tables absent from the schema"`
	}
}

// WipeHandler handles POST /v1/user/wipe. Admin only.
type WipeHandler struct {
	Operator actionProcessor
}

func NewWipeHandler(op actionProcessor) *WipeHandler {
	return &WipeHandler{Operator: op}
}

func (h *WipeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "wipe-user-data",
		Method:      http.MethodPost,
		Path:        "/v1/user/wipe",
		Summary:     "Wipe user data (admin)",
		Description: "Deletes every row belonging to a user across all budget tables in one database transaction.",
		Tags:        []string{"Admin"},
	}, h.handle)
}

func (h *WipeHandler) handle(ctx context.Context, input *WipeInput) (*WipeOutput, error) {
	if !input.Body.Confirm {
		return nil, huma.NewError(http.StatusBadRequest, "confirm must be true to wipe user data")
	}
	userID, err := respond.UserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	action := &actions.WipeUserData{UserID: userID}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, respond.Error(ctx, "failed to wipe user data", err)
	}

	out := &WipeOutput{}
	out.Body.UserID = userID.String()
	out.Body.Skipped = append([]string{}, action.Result.Skipped...)
	var total int64
	for table, n := range action.Result.Deleted {
		out.Body.Deleted = append(out.Body.Deleted, TableCount{Table: table, Deleted: n})
		total += n
	}
	sort.Slice(out.Body.Deleted, func(i, j int) bool {
		return out.Body.Deleted[i].Table < out.Body.Deleted[j].Table
	})

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("wipedUserID", userID.String())
		logData.AddData("rowsDeleted", total)
	}
	return out, nil
}
