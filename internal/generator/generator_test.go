package generator

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

var refTime = time.Date(2022, time.February, 12, 10, 30, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	return New(Config{Seed: seed, Now: refTime})
}

func TestTransactions_Deterministic(t *testing.T) {
	a := newTestGenerator(7).Transactions(20)
	b := newTestGenerator(7).Transactions(20)

	assert.Equal(t, a, b)
}

func TestTransactions_InjectedSource(t *testing.T) {
	a := NewFromSource(rand.NewSource(99), refTime).Transactions(5)
	b := NewFromSource(rand.NewSource(99), refTime).Transactions(5)
	c := NewFromSource(rand.NewSource(100), refTime).Transactions(5)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestTransactions_Shape(t *testing.T) {
	txs := newTestGenerator(1).Transactions(200)
	require.Len(t, txs, 200)

	ids := map[string]struct{}{}
	refs := map[string]struct{}{}
	for i, tx := range txs {
		ids[tx.ID] = struct{}{}
		refs[tx.TransactionID] = struct{}{}

		assert.True(t, strings.HasPrefix(tx.TransactionID, "TR_"))
		assert.Len(t, tx.TransactionID, len("TR_")+10)
		assert.Contains(t, []service.TransactionStatus{
			service.TransactionStatusProcessed,
			service.TransactionStatusPending,
			service.TransactionStatusFailed,
		}, tx.Status)

		magnitude := tx.Amount
		if magnitude < 0 {
			magnitude = -magnitude
		}
		assert.GreaterOrEqual(t, magnitude, int64(minAmount))
		assert.Less(t, magnitude, int64(maxAmount))

		switch tx.Type {
		case service.TransactionTypeWithdrawal, service.TransactionTypeBillPayment:
			assert.Negative(t, tx.Amount)
		default:
			assert.Positive(t, tx.Amount)
		}

		assert.False(t, tx.OccurredAt.After(refTime))
		assert.True(t, tx.OccurredAt.After(refTime.AddDate(0, 0, -historyDays-1)))
		assert.Equal(t, tx.OccurredAt.Format("Jan 2, 2006"), tx.Date)
		assert.Equal(t, tx.OccurredAt.Format("3:04PM"), tx.Time)

		if i > 0 {
			assert.False(t, tx.OccurredAt.After(txs[i-1].OccurredAt), "newest first")
		}
	}

	assert.Len(t, ids, 200, "ids unique within batch")
	assert.Len(t, refs, 200, "transaction references unique within batch")
}

func TestTransactions_StatusWeighting(t *testing.T) {
	txs := newTestGenerator(3).Transactions(5000)

	counts := map[service.TransactionStatus]int{}
	for _, tx := range txs {
		counts[tx.Status]++
	}

	processed := float64(counts[service.TransactionStatusProcessed]) / float64(len(txs))
	assert.InDelta(t, 0.8, processed, 0.05)
	assert.Greater(t, counts[service.TransactionStatusPending], 0)
	assert.Greater(t, counts[service.TransactionStatusFailed], 0)
}

func TestTransactions_NonPositiveCount(t *testing.T) {
	g := newTestGenerator(1)

	assert.Empty(t, g.Transactions(0))
	assert.NotNil(t, g.Transactions(-3))
}

func TestRevenueSeries(t *testing.T) {
	series := newTestGenerator(5).RevenueSeries()

	require.Len(t, series.Data, 12)
	assert.Equal(t, "Mar", series.Data[0].Month)
	assert.Equal(t, "Feb", series.Data[11].Month)

	var previous, current int64
	for i, p := range series.Data {
		assert.GreaterOrEqual(t, p.Value, int64(minRevenue))
		if i < 6 {
			previous += p.Value
		} else {
			current += p.Value
		}
	}
	assert.Equal(t, previous, series.Previous)
	assert.Equal(t, current, series.Current)

	expected := float64(current-previous) / float64(previous) * 100
	assert.InDelta(t, expected, series.Percentage, 0.01)
}

func TestAccountDetails(t *testing.T) {
	details := newTestGenerator(11).AccountDetails()

	assert.NotEmpty(t, details.BankName)
	assert.Contains(t, bankNames, details.BankName)
	assert.Len(t, details.AccountNumber, 10)
	for _, r := range details.AccountNumber {
		assert.True(t, r >= '0' && r <= '9')
	}
	assert.GreaterOrEqual(t, details.Balance, int64(0))
	assert.Less(t, details.Balance, int64(maxBalance))
}

func TestPick(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	only := []weighted[string]{{"a", 0}, {"b", 5}}

	for i := 0; i < 50; i++ {
		assert.Equal(t, "b", pick(r, only))
	}
}
