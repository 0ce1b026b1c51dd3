package generator

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/fundr-dashboard/internal/service"
)

var statusWeights = []weighted[service.TransactionStatus]{
	{service.TransactionStatusProcessed, 80},
	{service.TransactionStatusPending, 10},
	{service.TransactionStatusFailed, 10},
}

var typeWeights = []weighted[service.TransactionType]{
	{service.TransactionTypeTransfer, 40},
	{service.TransactionTypeDeposit, 25},
	{service.TransactionTypeWithdrawal, 20},
	{service.TransactionTypeBillPayment, 15},
}

var bankNames = []string{
	"STERLING BANK",
	"ACCESS BANK",
	"ZENITH BANK",
	"GUARANTY TRUST BANK",
	"FIRST BANK",
}

// Generator produces mock dashboard records from a single random source.
// It is not safe for concurrent use.
type Generator struct {
	rand  *rand.Rand
	uuids *uuid.Gen
	now   time.Time
}

// New returns a Generator seeded from cfg.
func New(cfg Config) *Generator {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return NewFromSource(rand.NewSource(cfg.Seed), cfg.Now)
}

// NewFromSource returns a Generator drawing every random value, identifiers
// included, from src. Same source state and now give the same output.
func NewFromSource(src rand.Source, now time.Time) *Generator {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	r := rand.New(src)
	return &Generator{
		rand:  r,
		uuids: uuid.NewGenWithOptions(uuid.WithRandomReader(r)),
		now:   now,
	}
}

// Transactions returns count transactions ordered newest first. IDs are unique
// within the batch.
func (g *Generator) Transactions(count int) []service.Transaction {
	if count <= 0 {
		return []service.Transaction{}
	}

	txs := make([]service.Transaction, 0, count)
	seenIDs := make(map[string]struct{}, count)
	seenRefs := make(map[string]struct{}, count)

	for len(txs) < count {
		id := g.newID()
		ref := transactionIDPrefix + g.digits(transactionIDDigits)
		if _, dup := seenIDs[id]; dup {
			continue
		}
		if _, dup := seenRefs[ref]; dup {
			continue
		}
		seenIDs[id] = struct{}{}
		seenRefs[ref] = struct{}{}

		txType := pick(g.rand, typeWeights)
		occurredAt := g.now.Add(-time.Duration(g.rand.Intn(historyDays*24*60)) * time.Minute).Truncate(time.Minute)

		txs = append(txs, service.Transaction{
			ID:            id,
			Amount:        signedAmount(txType, minAmount+g.rand.Int63n(maxAmount-minAmount)),
			Type:          txType,
			Date:          occurredAt.Format(displayDateLayout),
			Time:          occurredAt.Format(displayTimeLayout),
			Status:        pick(g.rand, statusWeights),
			TransactionID: ref,
			OccurredAt:    occurredAt,
		})
	}

	sortNewestFirst(txs)
	return txs
}

// RevenueSeries returns twelve monthly points ending at the reference month.
// Current covers the last six months and Previous the six before.
func (g *Generator) RevenueSeries() service.RevenueSeries {
	points := make([]service.RevenuePoint, revenueMonths)
	start := time.Date(g.now.Year(), g.now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(revenueMonths - 1), 0)

	var current, previous int64
	for i := range points {
		value := minRevenue + g.rand.Int63n(maxRevenue-minRevenue)
		points[i] = service.RevenuePoint{
			Month: start.AddDate(0, i, 0).Format("Jan"),
			Value: value,
		}
		if i < revenueMonths/2 {
			previous += value
		} else {
			current += value
		}
	}

	return service.RevenueSeries{
		Current:    current,
		Previous:   previous,
		Percentage: service.PercentageChange(current, previous),
		Data:       points,
	}
}

func (g *Generator) AccountDetails() service.AccountDetails {
	return service.AccountDetails{
		BankName:      bankNames[g.rand.Intn(len(bankNames))],
		AccountNumber: g.digits(accountNumberDigits),
		Balance:       g.rand.Int63n(maxBalance),
	}
}

func (g *Generator) newID() string {
	id, err := g.uuids.NewV4()
	if err != nil {
		// Reading from a math/rand source does not fail.
		panic(err)
	}
	return id.String()
}

func (g *Generator) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.rand.Intn(10)))
	}
	return b.String()
}

func signedAmount(txType service.TransactionType, magnitude int64) int64 {
	switch txType {
	case service.TransactionTypeWithdrawal, service.TransactionTypeBillPayment:
		return -magnitude
	default:
		return magnitude
	}
}

func pick[T any](r *rand.Rand, choices []weighted[T]) T {
	total := 0
	for _, c := range choices {
		total += c.weight
	}

	n := r.Intn(total)
	for _, c := range choices {
		if n < c.weight {
			return c.value
		}
		n -= c.weight
	}
	return choices[len(choices)-1].value
}

func sortNewestFirst(txs []service.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].OccurredAt.After(txs[j].OccurredAt)
	})
}
