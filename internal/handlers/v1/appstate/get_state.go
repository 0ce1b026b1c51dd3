package appstate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// GetStateHandler handles GET /v1/state.
type GetStateHandler struct {
	Operator actionProcessor
}

func NewGetStateHandler(op actionProcessor) *GetStateHandler {
	return &GetStateHandler{Operator: op}
}

func (h *GetStateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-state",
		Method:      http.MethodGet,
		Path:        "/v1/state",
		Summary:     "Get application state",
		Description: "Returns a snapshot of the dashboard, transactions and filters state.",
		Tags:        []string{"State"},
	}, h.handle)
}

func (h *GetStateHandler) handle(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return &StateOutput{Body: h.Operator.Store().Snapshot()}, nil
}
