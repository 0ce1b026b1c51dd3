package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/carson-networks/fundr-dashboard/internal/metrics"
	"github.com/carson-networks/fundr-dashboard/internal/storage"
	"github.com/carson-networks/fundr-dashboard/internal/storage/transaction"
)

const (
	DefaultPage  = 1
	DefaultLimit = 8
	MaxLimit     = 100

	OperationDashboardStats       = "getDashboardStats"
	OperationTransactions         = "getTransactions"
	OperationFilteredTransactions = "getFilteredTransactions"

	filterDateLayout = "2006-01-02"
)

// Generator is the data source behind the mock API.
type Generator interface {
	Transactions(count int) []Transaction
	RevenueSeries() RevenueSeries
	AccountDetails() AccountDetails
}

// MockAPIConfig controls backing-set size, simulated latency and failure injection.
type MockAPIConfig struct {
	BackingSetSize int
	LatencyMin     time.Duration
	LatencyMax     time.Duration
	// FailureRate is the probability in [0, 1] that a call answers with an
	// error envelope. Zero never fails.
	FailureRate float64
	// Seed drives latency and failure draws. Zero picks a time-based seed.
	Seed int64
}

func DefaultMockAPIConfig() MockAPIConfig {
	return MockAPIConfig{
		BackingSetSize: 20,
		LatencyMin:     300 * time.Millisecond,
		LatencyMax:     800 * time.Millisecond,
	}
}

// Option customises a MockAPI.
type Option func(*MockAPI)

func WithRecorder(recorder metrics.Recorder) Option {
	return func(m *MockAPI) {
		m.recorder = recorder
	}
}

func WithLogger(logger *logrus.Logger) Option {
	return func(m *MockAPI) {
		m.logger = logger
	}
}

// WithSleeper replaces the latency wait, mainly so tests do not sleep.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(m *MockAPI) {
		m.sleep = sleep
	}
}

// MockAPI simulates the dashboard backend over a Generator. Every call waits a
// simulated network delay and answers with an Envelope; it never returns a Go
// error for data calls.
type MockAPI struct {
	storage  *storage.Storage
	cfg      MockAPIConfig
	logger   *logrus.Logger
	recorder metrics.Recorder
	sleep    func(ctx context.Context, d time.Duration) error

	// mu guards gen and rand, neither of which is safe for concurrent use.
	mu   sync.Mutex
	gen  Generator
	rand *rand.Rand

	group  singleflight.Group
	loaded atomic.Bool
}

func NewMockAPI(store *storage.Storage, gen Generator, cfg MockAPIConfig, opts ...Option) *MockAPI {
	if cfg.BackingSetSize < 1 {
		cfg.BackingSetSize = DefaultMockAPIConfig().BackingSetSize
	}
	if cfg.LatencyMax < cfg.LatencyMin {
		cfg.LatencyMax = cfg.LatencyMin
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := &MockAPI{
		storage:  store,
		cfg:      cfg,
		logger:   logrus.StandardLogger(),
		recorder: metrics.NoOpRecorder{},
		sleep:    sleepContext,
		gen:      gen,
		rand:     rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetDashboardStats returns freshly generated revenue and account details.
func (m *MockAPI) GetDashboardStats(ctx context.Context) Envelope[DashboardStats] {
	m.mu.Lock()
	stats := DashboardStats{
		Revenue:        m.gen.RevenueSeries(),
		AccountDetails: m.gen.AccountDetails(),
	}
	m.mu.Unlock()

	delay, err := m.simulateNetwork(ctx)
	if err != nil {
		return finish(m, OperationDashboardStats, delay, failure[DashboardStats](err))
	}
	return finish(m, OperationDashboardStats, delay, success(stats))
}

// GetTransactions returns the page [(page-1)*limit, page*limit) of the backing
// set. page and limit below 1 are clamped to 1 and limit is capped at MaxLimit.
// A page past the end is empty; Total is always the backing-set size.
func (m *MockAPI) GetTransactions(ctx context.Context, page, limit int) Envelope[TransactionPage] {
	page, limit = clampPagination(page, limit)

	result, err := m.loadPage(ctx, page, limit)
	if err != nil {
		return finish(m, OperationTransactions, 0, failure[TransactionPage](err))
	}

	delay, err := m.simulateNetwork(ctx)
	if err != nil {
		return finish(m, OperationTransactions, delay, failure[TransactionPage](err))
	}
	return finish(m, OperationTransactions, delay, success(result))
}

// GetFilteredTransactions applies the status, type, from and to filters to the
// backing set. Unknown keys, empty values and unparsable dates are ignored.
func (m *MockAPI) GetFilteredTransactions(ctx context.Context, filters map[string]string) Envelope[[]Transaction] {
	filter := m.parseFilters(filters)

	matched, err := m.listMatching(ctx, filter)
	if err != nil {
		return finish(m, OperationFilteredTransactions, 0, failure[[]Transaction](err))
	}

	delay, err := m.simulateNetwork(ctx)
	if err != nil {
		return finish(m, OperationFilteredTransactions, delay, failure[[]Transaction](err))
	}
	return finish(m, OperationFilteredTransactions, delay, success(matched))
}

// Reset regenerates the backing set.
func (m *MockAPI) Reset(ctx context.Context) error {
	m.loaded.Store(false)
	return m.ensureBackingSet(ctx)
}

func (m *MockAPI) loadPage(ctx context.Context, page, limit int) (TransactionPage, error) {
	if err := m.ensureBackingSet(ctx); err != nil {
		return TransactionPage{}, err
	}

	total, err := m.storage.Transactions.Count(ctx, nil)
	if err != nil {
		return TransactionPage{}, err
	}

	totalPages := (total + limit - 1) / limit
	result := TransactionPage{
		Transactions: []Transaction{},
		Total:        total,
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
	}
	if page > totalPages {
		return result, nil
	}

	rows, err := m.storage.Transactions.List(ctx, &transaction.TransactionFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	})
	if err != nil {
		return TransactionPage{}, err
	}

	result.Transactions = make([]Transaction, len(rows))
	for i, row := range rows {
		result.Transactions[i] = transactionFromStorage(row)
	}
	return result, nil
}

func (m *MockAPI) listMatching(ctx context.Context, filter *transaction.TransactionFilter) ([]Transaction, error) {
	if err := m.ensureBackingSet(ctx); err != nil {
		return nil, err
	}

	rows, err := m.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	matched := make([]Transaction, len(rows))
	for i, row := range rows {
		matched[i] = transactionFromStorage(row)
	}
	return matched, nil
}

// ensureBackingSet generates the backing set once for all concurrent callers.
// The shared generation runs detached from any single caller's cancellation;
// each caller stops waiting when its own ctx ends.
func (m *MockAPI) ensureBackingSet(ctx context.Context) error {
	if m.loaded.Load() {
		return nil
	}

	ch := m.group.DoChan("backing-set", func() (interface{}, error) {
		if m.loaded.Load() {
			return nil, nil
		}
		return nil, m.generateBackingSet(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MockAPI) generateBackingSet(ctx context.Context) error {
	m.mu.Lock()
	txs := m.gen.Transactions(m.cfg.BackingSetSize)
	m.mu.Unlock()

	rows := make([]*transaction.Transaction, len(txs))
	for i, tx := range txs {
		rows[i] = transactionToStorage(tx)
	}
	if err := m.storage.Transactions.Replace(ctx, rows); err != nil {
		return fmt.Errorf("generate backing set: %w", err)
	}

	m.loaded.Store(true)
	m.logger.WithField("size", len(rows)).Debug("MockAPI.backingSet.generated")
	return nil
}

func (m *MockAPI) parseFilters(filters map[string]string) *transaction.TransactionFilter {
	filter := &transaction.TransactionFilter{}

	for key, value := range filters {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "status":
			filter.Status = value
		case "type":
			filter.Type = value
		case "from":
			from, err := time.Parse(filterDateLayout, value)
			if err != nil {
				m.logger.WithError(err).WithField("from", value).Debug("MockAPI.parseFilters.ignoring from")
				continue
			}
			filter.From = &from
		case "to":
			to, err := time.Parse(filterDateLayout, value)
			if err != nil {
				m.logger.WithError(err).WithField("to", value).Debug("MockAPI.parseFilters.ignoring to")
				continue
			}
			// Inclusive of the whole day.
			end := to.AddDate(0, 0, 1)
			filter.To = &end
		default:
			m.logger.WithField("key", key).Debug("MockAPI.parseFilters.ignoring unknown key")
		}
	}

	return filter
}

// simulateNetwork draws a delay and a failure decision, then waits. It returns
// the context error if ctx ends first.
func (m *MockAPI) simulateNetwork(ctx context.Context) (time.Duration, error) {
	m.mu.Lock()
	delay := m.cfg.LatencyMin
	if span := m.cfg.LatencyMax - m.cfg.LatencyMin; span > 0 {
		delay += time.Duration(m.rand.Int63n(int64(span) + 1))
	}
	fail := m.cfg.FailureRate > 0 && m.rand.Float64() < m.cfg.FailureRate
	m.mu.Unlock()

	if err := m.sleep(ctx, delay); err != nil {
		return delay, err
	}
	if fail {
		return delay, ErrSimulatedFailure
	}
	return delay, nil
}

func finish[T any](m *MockAPI, operation string, delay time.Duration, env Envelope[T]) Envelope[T] {
	m.recorder.RecordCall(operation, string(env.Status), delay)

	entry := m.logger.WithFields(logrus.Fields{
		"operation": operation,
		"status":    env.Status,
		"latencyMs": delay.Milliseconds(),
	})
	if !env.OK() {
		entry.WithField("message", env.Message).Warn("MockAPI.call.error")
		return env
	}
	entry.Debug("MockAPI.call.complete")
	return env
}

func clampPagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
