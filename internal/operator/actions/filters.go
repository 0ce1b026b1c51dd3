package actions

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/service"
	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// ApplyFilters replaces the filter criteria and loads the matching transactions.
type ApplyFilters struct {
	Filters map[string]string

	IAction
}

func (a *ApplyFilters) Perform(ctx context.Context, store *state.Store, api MockAPI) error {
	criteria := make(map[string]string, len(a.Filters))
	for k, v := range a.Filters {
		criteria[k] = v
	}

	store.Update(func(s *state.AppState) {
		s.Filters.Criteria = criteria
		s.Filters.Loading = true
		s.Filters.Error = ""
	})

	// The api gets its own copy so the stored criteria are never shared.
	query := make(map[string]string, len(criteria))
	for k, v := range criteria {
		query[k] = v
	}
	result := api.GetFilteredTransactions(ctx, query)

	store.Update(func(s *state.AppState) {
		s.Filters.Loading = false
		if !result.OK() {
			s.Filters.Error = result.Message
			return
		}
		s.Filters.Results = result.Data
	})

	return nil
}

// ClearFilters resets the criteria and results without calling the api.
type ClearFilters struct {
	IAction
}

func (c *ClearFilters) Perform(ctx context.Context, store *state.Store, api MockAPI) error {
	store.Update(func(s *state.AppState) {
		s.Filters = state.FiltersState{
			Criteria: map[string]string{},
			Results:  []service.Transaction{},
		}
	})
	return nil
}
