package actions

import (
	"context"

	"github.com/carson-networks/fundr-dashboard/internal/state"
)

// LoadTransactions fetches one page. Zero Page or Limit keeps the current one.
type LoadTransactions struct {
	Page  int
	Limit int

	IAction
}

func (l *LoadTransactions) Perform(ctx context.Context, store *state.Store, api MockAPI) error {
	var page, limit int
	store.Update(func(s *state.AppState) {
		page, limit = s.Transactions.Page, s.Transactions.Limit
		if l.Page != 0 {
			page = l.Page
		}
		if l.Limit != 0 {
			limit = l.Limit
		}
		s.Transactions.Loading = true
		s.Transactions.Error = ""
	})

	result := api.GetTransactions(ctx, page, limit)

	store.Update(func(s *state.AppState) {
		s.Transactions.Loading = false
		if !result.OK() {
			s.Transactions.Error = result.Message
			return
		}
		s.Transactions.Page = result.Data.Page
		s.Transactions.Limit = result.Data.Limit
		s.Transactions.Total = result.Data.Total
		s.Transactions.TotalPages = result.Data.TotalPages
		s.Transactions.Items = result.Data.Transactions
	})

	return nil
}
