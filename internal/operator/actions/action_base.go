package actions

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// MockAPI is the part of the mock API the actions call.
type MockAPI interface {
	GetDashboardStats(ctx context.Context) service.Envelope[service.DashboardStats]
	GetTransactions(ctx context.Context, page, limit int) service.Envelope[service.TransactionPage]
	GetFilteredTransactions(ctx context.Context, filters map[string]string) service.Envelope[[]service.Transaction]
	Reset(ctx context.Context) error
}

// IAction mutates the store. Envelope errors are recorded in the state, not
// returned; a returned error means the action could not run at all.
type IAction interface {
	Perform(ctx context.Context, store *state.Store, api MockAPI) error
}
