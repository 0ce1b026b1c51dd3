package actions

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// ResetTransactions regenerates the backing set, then reloads the first page
// and reapplies any active filters against the new data.
type ResetTransactions struct {
	IAction
}

func (r *ResetTransactions) Perform(ctx context.Context, store *state.Store, api MockAPI) error {
	store.Update(func(s *state.AppState) {
		s.Transactions.Loading = true
		s.Transactions.Error = ""
	})

	if err := api.Reset(ctx); err != nil {
		store.Update(func(s *state.AppState) {
			s.Transactions.Loading = false
			s.Transactions.Error = err.Error()
		})
		return nil
	}

	if err := (&LoadTransactions{Page: 1}).Perform(ctx, store, api); err != nil {
		return err
	}

	criteria := store.Snapshot().Filters.Criteria
	if len(criteria) == 0 {
		return nil
	}
	return (&ApplyFilters{Filters: criteria}).Perform(ctx, store, api)
}
