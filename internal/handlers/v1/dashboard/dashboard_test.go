package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fundr-dashboard/internal/clipboard"
	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
	"github.com/carson-networks/fundr-dashboard/internal/view"
)

type mockStatsGetter struct {
	mock.Mock
}

func (m *mockStatsGetter) GetDashboardStats(ctx context.Context) service.Envelope[service.DashboardStats] {
	args := m.Called(ctx)
	return args.Get(0).(service.Envelope[service.DashboardStats])
}

func sampleStats() service.DashboardStats {
	return service.DashboardStats{
		Revenue: service.RevenueSeries{
			Current:    12000,
			Previous:   10000,
			Percentage: 20,
			Data: []service.RevenuePoint{
				{Month: "Jan", Value: 5000},
				{Month: "Feb", Value: 7000},
			},
		},
		AccountDetails: service.AccountDetails{
			BankName:      "STERLING BANK",
			AccountNumber: "8000000000",
			Balance:       123456,
		},
	}
}

func TestHTTP_GetStats_Success(t *testing.T) {
	mockAPI := new(mockStatsGetter)
	mockAPI.On("GetDashboardStats", mock.Anything).
		Return(service.Envelope[service.DashboardStats]{Status: service.EnvelopeSuccess, Data: sampleStats()})

	_, api := humatest.New(t)
	NewGetStatsHandler(mockAPI).Register(api)

	resp := api.Get("/v1/dashboard/stats")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body GetStatsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Empty(t, body.Message)
	require.NotNil(t, body.Data)
	assert.Equal(t, "STERLING BANK", body.Data.AccountDetails.BankName)
	assert.Equal(t, "8000000000", body.Data.AccountDetails.AccountNumber)
	assert.Equal(t, "1234.56", body.Data.AccountDetails.BalanceText)
	assert.Equal(t, 20.0, body.Data.Revenue.Percentage)
	assert.Equal(t, []RevenuePoint{{Month: "Jan", Value: 5000}, {Month: "Feb", Value: 7000}}, body.Data.Revenue.Data)

	mockAPI.AssertExpectations(t)
}

func TestHTTP_GetStats_ErrorEnvelopeIsStill200(t *testing.T) {
	mockAPI := new(mockStatsGetter)
	mockAPI.On("GetDashboardStats", mock.Anything).
		Return(service.Envelope[service.DashboardStats]{Status: service.EnvelopeError, Message: "simulated network error"})

	_, api := humatest.New(t)
	NewGetStatsHandler(mockAPI).Register(api)

	resp := api.Get("/v1/dashboard/stats")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body GetStatsResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "simulated network error", body.Message)
	assert.Nil(t, body.Data)
}

func newCopyTestAPI(t *testing.T, cb *clipboard.Memory, store *state.Store) humatest.TestAPI {
	t.Helper()
	logger, _ := test.NewNullLogger()
	button := view.NewCopyButton(cb, time.Hour, logger)

	_, api := humatest.New(t)
	NewCopyAccountHandler(button, store).Register(api)
	return api
}

func TestHTTP_CopyAccount_CopiesLoadedNumber(t *testing.T) {
	store := state.NewStore()
	stats := sampleStats()
	store.Update(func(s *state.AppState) {
		s.Dashboard.Stats = &stats
	})
	cb := clipboard.NewMemory()
	api := newCopyTestAPI(t, cb, store)

	resp := api.Post("/v1/dashboard/account/copy")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body CopyAccountResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Copied)
	assert.Equal(t, view.CopiedLabel, body.Label)
	assert.Equal(t, "8000000000", cb.Text())
}

func TestHTTP_CopyAccount_FailureKeepsLabel(t *testing.T) {
	store := state.NewStore()
	stats := sampleStats()
	store.Update(func(s *state.AppState) {
		s.Dashboard.Stats = &stats
	})
	cb := clipboard.NewMemory()
	cb.Fail(errors.New("Copy failed"))
	api := newCopyTestAPI(t, cb, store)

	resp := api.Post("/v1/dashboard/account/copy")
	assert.Equal(t, http.StatusOK, resp.Code)

	var body CopyAccountResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.False(t, body.Copied)
	assert.Equal(t, view.CopyLabel, body.Label)
	assert.Zero(t, cb.Writes())
}

func TestHTTP_CopyAccount_NotLoaded(t *testing.T) {
	cb := clipboard.NewMemory()
	api := newCopyTestAPI(t, cb, state.NewStore())

	resp := api.Post("/v1/dashboard/account/copy")
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Zero(t, cb.Writes())
}
