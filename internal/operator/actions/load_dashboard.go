package actions

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/state"
)

type LoadDashboard struct {
	IAction
}

func (l *LoadDashboard) Perform(ctx context.Context, store *state.Store, api MockAPI) error {
	store.Update(func(s *state.AppState) {
		s.Dashboard.Loading = true
		s.Dashboard.Error = ""
	})

	result := api.GetDashboardStats(ctx)

	store.Update(func(s *state.AppState) {
		s.Dashboard.Loading = false
		if !result.OK() {
			// Previously loaded stats stay visible.
			s.Dashboard.Error = result.Message
			return
		}
		stats := result.Data
		s.Dashboard.Stats = &stats
	})

	return nil
}
