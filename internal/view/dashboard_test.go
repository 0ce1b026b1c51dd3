package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

func TestRenderDashboard_Loaded(t *testing.T) {
	snap := state.Initial()
	snap.Dashboard.Stats = &service.DashboardStats{
		Revenue: service.RevenueSeries{
			Current:    9000,
			Previous:   10000,
			Percentage: -10,
			Data:       []service.RevenuePoint{{Month: "Jan", Value: 3000}, {Month: "Feb", Value: 4500}},
		},
		AccountDetails: *sterling,
	}
	snap.Transactions.Items = []service.Transaction{{
		ID:            "1",
		Amount:        43644,
		Type:          service.TransactionTypeTransfer,
		Date:          "Feb 12, 2022",
		Time:          "10:30AM",
		Status:        service.TransactionStatusProcessed,
		TransactionID: "TR_8401857902",
	}}
	snap.Transactions.Total = 20
	snap.Transactions.TotalPages = 3

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, snap, CopyLabel))
	out := buf.String()

	assert.Contains(t, out, "STERLING BANK")
	assert.Contains(t, out, "90.00")
	assert.Contains(t, out, "-10.00%")
	assert.Contains(t, out, `data-month="Feb"`)
	assert.Contains(t, out, "436.44")
	assert.Contains(t, out, "TR_8401857902")
	assert.Contains(t, out, "Page 1 of 3 (20 transactions)")
}

func TestRenderDashboard_Loading(t *testing.T) {
	snap := state.Initial()
	snap.Dashboard.Loading = true

	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, snap, CopyLabel))
	out := buf.String()

	assert.Contains(t, out, "account-card skeleton")
	assert.Contains(t, out, "revenue skeleton")
	assert.NotContains(t, out, "ACCOUNT DETAILS")
}

func TestRenderDashboard_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDashboard(&buf, state.Initial(), CopyLabel))
	out := buf.String()

	assert.NotContains(t, out, "account-card")
	assert.NotContains(t, out, "skeleton")
	assert.NotContains(t, out, `class="pagination"`)
	assert.NotContains(t, out, "Page 1 of 0")
}
