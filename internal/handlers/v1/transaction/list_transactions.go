package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/fundr-dashboard/internal/logging"
	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions. Values
// below 1 are clamped rather than rejected.
type ListTransactionsInput struct {
	Page  int `query:"page" default:"1" doc:"1-based page number"`
	Limit int `query:"limit" default:"8" doc:"Page size, capped at 100"`
}

// TransactionPage is the data of the list envelope.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions"`
	Total        int           `json:"total" doc:"Size of the whole backing set"`
	Page         int           `json:"page" doc:"Page actually served after clamping"`
	Limit        int           `json:"limit" doc:"Limit actually applied after clamping"`
	TotalPages   int           `json:"totalPages" doc:"Number of pages at this limit"`
}

// ListTransactionsResponseBody is the envelope returned by the list endpoint.
type ListTransactionsResponseBody struct {
	Status  string           `json:"status" enum:"success,error" doc:"Envelope status"`
	Data    *TransactionPage `json:"data,omitempty" doc:"Transaction page, absent on error"`
	Message string           `json:"message,omitempty" doc:"Error message, set on error"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

type transactionLister interface {
	GetTransactions(ctx context.Context, page, limit int) service.Envelope[service.TransactionPage]
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	API transactionLister
}

func NewListTransactionsHandler(api transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{API: api}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns one page of the transaction backing set using page/limit pagination.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("getTransactionsMs")
	}
	result := h.API.GetTransactions(ctx, input.Page, input.Limit)
	if stopTimer != nil {
		stopTimer()
	}

	if !result.OK() {
		return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
			Status:  string(result.Status),
			Message: result.Message,
		}}, nil
	}

	if logData != nil {
		logData.AddData("transactionCount", len(result.Data.Transactions))
	}

	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Status: string(result.Status),
		Data: &TransactionPage{
			Transactions: transactionsFromService(result.Data.Transactions),
			Total:        result.Data.Total,
			Page:         result.Data.Page,
			Limit:        result.Data.Limit,
			TotalPages:   result.Data.TotalPages,
		},
	}}, nil
}
