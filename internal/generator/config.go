package generator

import (
	"time"
)

// Config drives the mock data generator.
type Config struct {
	// Seed of zero picks a time-based seed.
	Seed int64
	// Now is the reference time transaction dates and revenue months count
	// back from. Zero means time.Now().
	Now time.Time
}

// DefaultConfig returns a fixed seed and the current time.
func DefaultConfig() Config {
	return Config{
		Seed: 42,
		Now:  time.Now().UTC(),
	}
}

const (
	minAmount = 1_000
	maxAmount = 100_000

	historyDays = 180

	revenueMonths = 12
	minRevenue    = 100_000
	maxRevenue    = 1_000_000

	maxBalance = 10_000_000

	accountNumberDigits = 10
	transactionIDDigits = 10
	transactionIDPrefix = "TR_"
	displayDateLayout   = "Jan 2, 2006"
	displayTimeLayout   = "3:04PM"
)

type weighted[T any] struct {
	value  T
	weight int
}
