package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// FilterTransactionsBody is the request body for filtering transactions.
type FilterTransactionsBody struct {
	Filters map[string]string `json:"filters" doc:"Criteria keyed by status, type, from or to (YYYY-MM-DD). Other keys are ignored."`
}

// FilterTransactionsInput is the Huma input for filtering transactions.
type FilterTransactionsInput struct {
	Body FilterTransactionsBody
}

// FilterTransactionsResponseBody is the envelope returned by the filter endpoint.
type FilterTransactionsResponseBody struct {
	Status  string        `json:"status" enum:"success,error" doc:"Envelope status"`
	Data    []Transaction `json:"data" doc:"Matching transactions, null on error"`
	Message string        `json:"message,omitempty" doc:"Error message, set on error"`
}

// FilterTransactionsOutput is the Huma output for filtering transactions.
type FilterTransactionsOutput struct {
	Body FilterTransactionsResponseBody
}

type transactionFilterer interface {
	GetFilteredTransactions(ctx context.Context, filters map[string]string) service.Envelope[[]service.Transaction]
}

// FilterTransactionsHandler handles POST /v1/transactions/filter.
type FilterTransactionsHandler struct {
	API transactionFilterer
}

func NewFilterTransactionsHandler(api transactionFilterer) *FilterTransactionsHandler {
	return &FilterTransactionsHandler{API: api}
}

func (h *FilterTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "filter-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transactions/filter",
		Summary:     "Filter transactions",
		Description: "Returns every transaction in the backing set matching all given criteria.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *FilterTransactionsHandler) handle(ctx context.Context, input *FilterTransactionsInput) (*FilterTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	filters := input.Body.Filters
	if filters == nil {
		filters = map[string]string{}
	}

	var stopTimer func()
	if logData != nil {
		logData.AddData("filterCount", len(filters))
		stopTimer = logData.AddTiming("getFilteredTransactionsMs")
	}
	result := h.API.GetFilteredTransactions(ctx, filters)
	if stopTimer != nil {
		stopTimer()
	}

	if !result.OK() {
		return &FilterTransactionsOutput{Body: FilterTransactionsResponseBody{
			Status:  string(result.Status),
			Message: result.Message,
		}}, nil
	}

	return &FilterTransactionsOutput{Body: FilterTransactionsResponseBody{
		Status: string(result.Status),
		Data:   transactionsFromService(result.Data),
	}}, nil
}
