package state

import (
	"sync"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// DashboardState is the slice behind the dashboard page. Stats stays nil until
// the first successful load.
type DashboardState struct {
	Loading bool                    `json:"loading"`
	Stats   *service.DashboardStats `json:"stats"`
	Error   string                  `json:"error,omitempty"`
}

// TransactionsState is the paginated transaction list.
type TransactionsState struct {
	Loading    bool                  `json:"loading"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	Total      int                   `json:"total"`
	TotalPages int                   `json:"totalPages"`
	Items      []service.Transaction `json:"items"`
	Error      string                `json:"error,omitempty"`
}

// FiltersState holds the current filter criteria and their results.
type FiltersState struct {
	Criteria map[string]string     `json:"criteria"`
	Loading  bool                  `json:"loading"`
	Results  []service.Transaction `json:"results"`
	Error    string                `json:"error,omitempty"`
}

// AppState is the whole client-facing application state.
type AppState struct {
	Dashboard    DashboardState    `json:"dashboard"`
	Transactions TransactionsState `json:"transactions"`
	Filters      FiltersState      `json:"filters"`
}

// Initial returns the state before anything has loaded.
func Initial() AppState {
	return AppState{
		Transactions: TransactionsState{
			Page:  service.DefaultPage,
			Limit: service.DefaultLimit,
			Items: []service.Transaction{},
		},
		Filters: FiltersState{
			Criteria: map[string]string{},
			Results:  []service.Transaction{},
		},
	}
}

// Store owns the AppState. Readers get deep copies; writers go through Update.
type Store struct {
	mu    sync.RWMutex
	state AppState
}

func NewStore() *Store {
	return &Store{state: Initial()}
}

func (s *Store) Snapshot() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Update applies fn to the live state under the write lock. fn must not keep
// references to the state after it returns.
func (s *Store) Update(fn func(*AppState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
}

func (a AppState) clone() AppState {
	out := a

	if a.Dashboard.Stats != nil {
		stats := *a.Dashboard.Stats
		stats.Revenue.Data = append([]service.RevenuePoint(nil), a.Dashboard.Stats.Revenue.Data...)
		out.Dashboard.Stats = &stats
	}

	out.Transactions.Items = cloneTransactions(a.Transactions.Items)
	out.Filters.Results = cloneTransactions(a.Filters.Results)

	out.Filters.Criteria = make(map[string]string, len(a.Filters.Criteria))
	for k, v := range a.Filters.Criteria {
		out.Filters.Criteria[k] = v
	}

	return out
}

func cloneTransactions(txs []service.Transaction) []service.Transaction {
	if txs == nil {
		return []service.Transaction{}
	}
	out := make([]service.Transaction, len(txs))
	copy(out, txs)
	return out
}
