package storage

import (
	"github.com/carson-networks/fundr-dashboard/internal/storage/transaction"
)

// Storage holds the in-memory backing set used to serve transaction queries.
type Storage struct {
	Transactions transaction.ITransactionTable
}

func NewStorage() *Storage {
	return &Storage{
		Transactions: transaction.NewMemoryTable(),
	}
}
