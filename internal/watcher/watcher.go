package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mkarlin/orderwatch/internal/metrics"
	"github.com/mkarlin/orderwatch/internal/model"
)

// OrderFetcher yields the current upstream order set.
type OrderFetcher interface {
	LatestOrders(ctx context.Context) (model.OrderSet, error)
}

// OrderStore is the durable side of the watch loop.
type OrderStore interface {
	LoadRecent(ctx context.Context, limit int) ([]model.Order, error)
	Insert(ctx context.Context, o model.Order) error
}

// Config holds watcher configuration.
type Config struct {
	Interval       time.Duration // Poll interval (default: 2s)
	Timeout        time.Duration // Per-fetch timeout (default: 30s)
	BootstrapLimit int           // Rows loaded to seed the baseline (default: 10)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Interval:       2 * time.Second,
		Timeout:        30 * time.Second,
		BootstrapLimit: 10,
	}
}

// Stats are cumulative watch loop counters.
type Stats struct {
	Cycles       int64 // Completed cycles, successful or not
	FetchErrors  int64 // Cycles skipped on a failed fetch
	NewOrders    int64 // Orders observed as new
	InsertErrors int64 // Orders that could not be persisted
}

// Watcher runs the fetch-diff-persist loop. There is exactly one writer to
// the baseline and one writer to the store, so the loop itself needs no
// locking; only the Stats counters are shared with other goroutines.
type Watcher struct {
	cfg     Config
	fetcher OrderFetcher
	store   OrderStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	// Owned by the run goroutine after Start.
	baseline model.OrderSet
	primed   bool // at least one successful cycle has completed

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	cycles       atomic.Int64
	fetchErrors  atomic.Int64
	newOrders    atomic.Int64
	insertErrors atomic.Int64
}

// New creates a new Watcher.
func New(cfg Config, fetcher OrderFetcher, store OrderStore, logger *slog.Logger, m *metrics.Metrics) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		cfg:     cfg,
		fetcher: fetcher,
		store:   store,
		logger:  logger,
		metrics: m,
	}
}

// Start seeds the baseline from the store and begins the poll loop.
//
// A bootstrap failure is fatal by contract: entering the loop with an empty
// baseline would re-report every already-persisted order as new.
func (w *Watcher) Start(ctx context.Context) error {
	w.ctx, w.cancel = context.WithCancel(ctx)

	if err := w.bootstrap(); err != nil {
		return err
	}

	w.wg.Add(1)
	go w.run()

	w.logger.Info("watcher started",
		"interval", w.cfg.Interval,
		"baseline", w.baseline.Len(),
	)

	return nil
}

// bootstrap seeds the baseline from the most recent persisted orders.
func (w *Watcher) bootstrap() error {
	recent, err := w.store.LoadRecent(w.ctx, w.cfg.BootstrapLimit)
	if err != nil {
		return fmt.Errorf("load baseline: %w", err)
	}
	w.baseline = model.NewOrderSet(recent...)
	return nil
}

// Stop gracefully shuts down the watcher.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.cancel()
	}

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		w.logger.Info("watcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stats returns current counters.
func (w *Watcher) Stats() Stats {
	return Stats{
		Cycles:       w.cycles.Load(),
		FetchErrors:  w.fetchErrors.Load(),
		NewOrders:    w.newOrders.Load(),
		InsertErrors: w.insertErrors.Load(),
	}
}

// run is the main watch loop.
func (w *Watcher) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	// Poll immediately on start.
	w.cycle()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.cycle()
		}
	}
}

// cycle performs one fetch-diff-persist pass.
func (w *Watcher) cycle() {
	w.cycles.Add(1)

	start := time.Now()
	ctx, cancel := context.WithTimeout(w.ctx, w.cfg.Timeout)
	current, err := w.fetcher.LatestOrders(ctx)
	cancel()
	w.metrics.RecordFetchDuration(time.Since(start))

	if err != nil {
		// Skip the cycle, keep the baseline. The interval is the only
		// retry mechanism.
		w.logger.Error("fetch failed", "error", err)
		w.fetchErrors.Add(1)
		w.metrics.RecordCycle("error")
		return
	}

	newOrders := current.Diff(w.baseline)

	if w.primed && current.Len() > 0 && len(newOrders) == current.Len() {
		// The entire batch turned over since the last cycle, so orders
		// likely rotated out of the upstream window unseen.
		w.logger.Warn("new orders possibly missed",
			"batch", current.Len(),
			"interval", w.cfg.Interval,
		)
		w.metrics.RecordMissedWarning()
	}

	for _, o := range newOrders {
		w.logger.Info("new order", "order", o)
		w.newOrders.Add(1)

		if err := w.store.Insert(w.ctx, o); err != nil {
			// At-most-once persistence: the order is reported but this
			// row is lost. The cycle carries on.
			w.logger.Error("failed to insert order", "order", o, "error", err)
			w.insertErrors.Add(1)
			w.metrics.RecordInsert("error")
			continue
		}
		w.metrics.RecordInsert("ok")
	}

	w.metrics.RecordNewOrders(len(newOrders))

	// Replace, not union: orders that aged out of the upstream window drop
	// out of the baseline too.
	w.baseline = current
	w.primed = true

	w.metrics.SetBaselineSize(w.baseline.Len())
	w.metrics.RecordCycle("ok")

	w.logger.Debug("cycle complete",
		"current", current.Len(),
		"new", len(newOrders),
		"duration", time.Since(start),
	)
}
