package transaction

import (
	"context"
	"time"
)

// Transaction represents a backing-set record.
type Transaction struct {
	ID            string
	Amount        int64
	Type          string
	Date          string
	Time          string
	Status        string
	TransactionID string
	OccurredAt    time.Time
}

// TransactionFilter specifies filters for listing transactions. Empty Status
// and Type match everything. From is inclusive and To exclusive. A Limit of 0
// returns every match after Offset.
type TransactionFilter struct {
	Status string
	Type   string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// ITransactionTable defines the interface for backing-set operations.
// This abstraction allows swapping the in-memory implementation without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, filter *TransactionFilter) (int, error)
	Replace(ctx context.Context, rows []*Transaction) error
}
