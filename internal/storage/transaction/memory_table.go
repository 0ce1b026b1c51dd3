package transaction

import (
	"context"
	"strings"
	"sync"
)

var _ ITransactionTable = (*MemoryTable)(nil)

// MemoryTable holds the backing set in insertion order. Rows are treated as
// immutable once stored; Replace swaps the whole set.
type MemoryTable struct {
	mu   sync.RWMutex
	rows []*Transaction
}

func NewMemoryTable() *MemoryTable {
	return &MemoryTable{}
}

// List returns rows matching the filter. Nil filter returns all.
func (t *MemoryTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := make([]*Transaction, 0, len(t.rows))
	for _, row := range t.rows {
		if filter.matches(row) {
			matched = append(matched, row)
		}
	}

	if filter == nil {
		return matched, nil
	}

	if filter.Offset >= len(matched) {
		return []*Transaction{}, nil
	}
	if filter.Offset > 0 {
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

// Count returns the number of rows matching the filter, ignoring Limit and Offset.
func (t *MemoryTable) Count(ctx context.Context, filter *TransactionFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, row := range t.rows {
		if filter.matches(row) {
			n++
		}
	}
	return n, nil
}

func (t *MemoryTable) Replace(ctx context.Context, rows []*Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := make([]*Transaction, len(rows))
	copy(copied, rows)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = copied
	return nil
}

func (f *TransactionFilter) matches(row *Transaction) bool {
	if f == nil {
		return true
	}
	if f.Status != "" && !strings.EqualFold(f.Status, row.Status) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(f.Type, row.Type) {
		return false
	}
	if f.From != nil && row.OccurredAt.Before(*f.From) {
		return false
	}
	if f.To != nil && !row.OccurredAt.Before(*f.To) {
		return false
	}
	return true
}
