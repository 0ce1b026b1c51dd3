package transaction

import (
	"time"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID            string `json:"id" doc:"Transaction UUID"`
	Amount        int64  `json:"amount" doc:"Signed amount in minor units"`
	AmountText    string `json:"amountText" doc:"Signed amount in major units with two decimals"`
	Type          string `json:"type" enum:"Transfer,Deposit,Withdrawal,Bill Payment" doc:"Transaction type"`
	Date          string `json:"date" doc:"Display date, e.g. Feb 12, 2022"`
	Time          string `json:"time" doc:"Display time, e.g. 10:30AM"`
	Status        string `json:"status" enum:"Processed,Pending,Failed" doc:"Processing status"`
	TransactionID string `json:"transactionId" doc:"Reference shown to the user, TR_ followed by 10 digits"`
	OccurredAt    string `json:"occurredAt" format:"date-time" doc:"RFC3339 time the display date and time are rendered from"`
}

func transactionsFromService(txs []service.Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	for i, tx := range txs {
		out[i] = Transaction{
			ID:            tx.ID,
			Amount:        tx.Amount,
			AmountText:    service.FormatAmount(tx.Amount),
			Type:          string(tx.Type),
			Date:          tx.Date,
			Time:          tx.Time,
			Status:        string(tx.Status),
			TransactionID: tx.TransactionID,
			OccurredAt:    tx.OccurredAt.Format(time.RFC3339),
		}
	}
	return out
}
