package appstate

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/operator/actions"
)

// LoadTransactionsBody is the request body for loading a transaction page.
// Zero keeps the current page or limit.
type LoadTransactionsBody struct {
	Page  int `json:"page,omitempty" doc:"1-based page number, 0 keeps the current page"`
	Limit int `json:"limit,omitempty" doc:"Page size, 0 keeps the current limit"`
}

// LoadTransactionsInput is the Huma input for loading a transaction page.
type LoadTransactionsInput struct {
	Body LoadTransactionsBody
}

// ApplyFiltersBody is the request body for applying filters.
type ApplyFiltersBody struct {
	Filters map[string]string `json:"filters" doc:"Criteria keyed by status, type, from or to (YYYY-MM-DD)"`
}

// ApplyFiltersInput is the Huma input for applying filters.
type ApplyFiltersInput struct {
	Body ApplyFiltersBody
}

// DispatchHandler exposes the state actions. Each endpoint runs one action on
// the operator queue and answers with the new snapshot.
type DispatchHandler struct {
	Operator actionProcessor
}

func NewDispatchHandler(op actionProcessor) *DispatchHandler {
	return &DispatchHandler{Operator: op}
}

func (h *DispatchHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "load-dashboard",
		Method:      http.MethodPost,
		Path:        "/v1/state/dashboard",
		Summary:     "Load dashboard stats",
		Tags:        []string{"State"},
	}, h.loadDashboard)

	huma.Register(api, huma.Operation{
		OperationID: "load-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/state/transactions",
		Summary:     "Load a transaction page",
		Tags:        []string{"State"},
	}, h.loadTransactions)

	huma.Register(api, huma.Operation{
		OperationID: "reset-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/state/transactions/reset",
		Summary:     "Regenerate the transaction backing set",
		Description: "Replaces the backing set with freshly generated transactions, reloads the first page and reapplies active filters.",
		Tags:        []string{"State"},
	}, h.resetTransactions)

	huma.Register(api, huma.Operation{
		OperationID: "apply-filters",
		Method:      http.MethodPost,
		Path:        "/v1/state/filters",
		Summary:     "Apply transaction filters",
		Tags:        []string{"State"},
	}, h.applyFilters)

	huma.Register(api, huma.Operation{
		OperationID: "clear-filters",
		Method:      http.MethodDelete,
		Path:        "/v1/state/filters",
		Summary:     "Clear transaction filters",
		Tags:        []string{"State"},
	}, h.clearFilters)
}

func (h *DispatchHandler) loadDashboard(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return process(ctx, h.Operator, "LoadDashboard", &actions.LoadDashboard{})
}

func (h *DispatchHandler) loadTransactions(ctx context.Context, input *LoadTransactionsInput) (*StateOutput, error) {
	return process(ctx, h.Operator, "LoadTransactions", &actions.LoadTransactions{
		Page:  input.Body.Page,
		Limit: input.Body.Limit,
	})
}

func (h *DispatchHandler) resetTransactions(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return process(ctx, h.Operator, "ResetTransactions", &actions.ResetTransactions{})
}

func (h *DispatchHandler) applyFilters(ctx context.Context, input *ApplyFiltersInput) (*StateOutput, error) {
	return process(ctx, h.Operator, "ApplyFilters", &actions.ApplyFilters{Filters: input.Body.Filters})
}

func (h *DispatchHandler) clearFilters(ctx context.Context, input *struct{}) (*StateOutput, error) {
	return process(ctx, h.Operator, "ClearFilters", &actions.ClearFilters{})
}
