package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

type mockTransactionAPI struct {
	mock.Mock
}

func (m *mockTransactionAPI) GetTransactions(ctx context.Context, page, limit int) service.Envelope[service.TransactionPage] {
	args := m.Called(ctx, page, limit)
	return args.Get(0).(service.Envelope[service.TransactionPage])
}

func (m *mockTransactionAPI) GetFilteredTransactions(ctx context.Context, filters map[string]string) service.Envelope[[]service.Transaction] {
	args := m.Called(ctx, filters)
	return args.Get(0).(service.Envelope[[]service.Transaction])
}

var occurredAt = time.Date(2022, 2, 12, 10, 30, 0, 0, time.UTC)

func sampleTransaction() service.Transaction {
	return service.Transaction{
		ID:            "0b1c0c52-5a3b-4a67-9b59-0d7f2b6f3c11",
		Amount:        -43644,
		Type:          service.TransactionTypeBillPayment,
		Date:          "Feb 12, 2022",
		Time:          "10:30AM",
		Status:        service.TransactionStatusPending,
		TransactionID: "TR_8401857902",
		OccurredAt:    occurredAt,
	}
}

func newListTestAPI(t *testing.T, api transactionLister) humatest.TestAPI {
	t.Helper()
	_, testAPI := humatest.New(t)
	NewListTransactionsHandler(api).Register(testAPI)
	return testAPI
}

func TestHTTP_ListTransactions_Defaults(t *testing.T) {
	mockAPI := new(mockTransactionAPI)
	mockAPI.On("GetTransactions", mock.Anything, 1, 8).
		Return(service.Envelope[service.TransactionPage]{
			Status: service.EnvelopeSuccess,
			Data: service.TransactionPage{
				Transactions: []service.Transaction{sampleTransaction()},
				Total:        20,
				Page:         1,
				Limit:        8,
				TotalPages:   3,
			},
		})

	resp := newListTestAPI(t, mockAPI).Get("/v1/transactions")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListTransactionsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	require.NotNil(t, body.Data)
	assert.Equal(t, 20, body.Data.Total)
	assert.Equal(t, 3, body.Data.TotalPages)
	require.Len(t, body.Data.Transactions, 1)

	tx := body.Data.Transactions[0]
	assert.Equal(t, int64(-43644), tx.Amount)
	assert.Equal(t, "-436.44", tx.AmountText)
	assert.Equal(t, "Bill Payment", tx.Type)
	assert.Equal(t, "Pending", tx.Status)
	assert.Equal(t, "TR_8401857902", tx.TransactionID)
	assert.Equal(t, "2022-02-12T10:30:00Z", tx.OccurredAt)

	mockAPI.AssertExpectations(t)
}

func TestHTTP_ListTransactions_PassesQueryThrough(t *testing.T) {
	mockAPI := new(mockTransactionAPI)
	mockAPI.On("GetTransactions", mock.Anything, 0, 500).
		Return(service.Envelope[service.TransactionPage]{
			Status: service.EnvelopeSuccess,
			Data: service.TransactionPage{
				Transactions: []service.Transaction{},
				Total:        20,
				Page:         1,
				Limit:        100,
				TotalPages:   1,
			},
		})

	resp := newListTestAPI(t, mockAPI).Get("/v1/transactions?page=0&limit=500")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListTransactionsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	require.NotNil(t, body.Data)
	assert.Equal(t, 1, body.Data.Page)
	assert.Equal(t, 100, body.Data.Limit)
	assert.Empty(t, body.Data.Transactions)

	mockAPI.AssertExpectations(t)
}

func TestHTTP_ListTransactions_ErrorEnvelope(t *testing.T) {
	mockAPI := new(mockTransactionAPI)
	mockAPI.On("GetTransactions", mock.Anything, 2, 8).
		Return(service.Envelope[service.TransactionPage]{
			Status:  service.EnvelopeError,
			Message: "simulated network error",
		})

	resp := newListTestAPI(t, mockAPI).Get("/v1/transactions?page=2")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListTransactionsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "simulated network error", body.Message)
	assert.Nil(t, body.Data)
}

func TestHTTP_ListTransactions_InvalidQuery(t *testing.T) {
	mockAPI := new(mockTransactionAPI)

	resp := newListTestAPI(t, mockAPI).Get("/v1/transactions?page=abc")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)

	mockAPI.AssertNotCalled(t, "GetTransactions", mock.Anything, mock.Anything, mock.Anything)
}
