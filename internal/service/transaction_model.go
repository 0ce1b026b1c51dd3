package service

import (
	"time"

	"github.com/carson-networks/fundr-dashboard/internal/storage/transaction"
)

// TransactionStatus is the processing state shown in the transaction list.
type TransactionStatus string

const (
	TransactionStatusProcessed TransactionStatus = "Processed"
	TransactionStatusPending   TransactionStatus = "Pending"
	TransactionStatusFailed    TransactionStatus = "Failed"
)

// TransactionType is the kind of money movement.
type TransactionType string

const (
	TransactionTypeTransfer    TransactionType = "Transfer"
	TransactionTypeDeposit     TransactionType = "Deposit"
	TransactionTypeWithdrawal  TransactionType = "Withdrawal"
	TransactionTypeBillPayment TransactionType = "Bill Payment"
)

// Transaction represents a generated transaction in the service layer.
// Amount is in minor currency units. Date and Time are display strings
// rendered from OccurredAt.
type Transaction struct {
	ID            string            `json:"id"`
	Amount        int64             `json:"amount"`
	Type          TransactionType   `json:"type"`
	Date          string            `json:"date"`
	Time          string            `json:"time"`
	Status        TransactionStatus `json:"status"`
	TransactionID string            `json:"transactionId"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

// TransactionPage is one page of the backing set. Total is the size of the
// whole backing set, not of the page.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	Total        int           `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"totalPages"`
}

func transactionToStorage(tx Transaction) *transaction.Transaction {
	return &transaction.Transaction{
		ID:            tx.ID,
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Date:          tx.Date,
		Time:          tx.Time,
		Status:        string(tx.Status),
		TransactionID: tx.TransactionID,
		OccurredAt:    tx.OccurredAt,
	}
}

func transactionFromStorage(row *transaction.Transaction) Transaction {
	return Transaction{
		ID:            row.ID,
		Amount:        row.Amount,
		Type:          TransactionType(row.Type),
		Date:          row.Date,
		Time:          row.Time,
		Status:        TransactionStatus(row.Status),
		TransactionID: row.TransactionID,
		OccurredAt:    row.OccurredAt,
	}
}
