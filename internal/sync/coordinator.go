// Package sync runs one ingestion pass: fetch the day's orders, keep the ones
// no earlier run exported, hand them to the writers and save the state.
package sync

import (
	"path/filepath"
	"time"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/internal/export"
	"github.com/dkerobean/WoocommerceOrders/internal/store"
	"github.com/dkerobean/WoocommerceOrders/internal/telegram"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

type Coordinator struct {
	dataDir   string
	location  *time.Location
	fetcher   *Fetcher
	processed *store.ProcessedOrders
	customers *store.Customers
	writers   []export.Writer
	notifier  telegram.Notifier
	logger    *logging.Logger
}

func NewCoordinator(cfg *config.Config, api wooapi.WOOAPI, writers []export.Writer, notifier telegram.Notifier, logger *logging.Logger) *Coordinator {
	dir := cfg.STORAGE.DataDir
	if notifier == nil {
		notifier = telegram.Noop{}
	}
	return &Coordinator{
		dataDir:   dir,
		location:  cfg.Location(),
		fetcher:   NewFetcher(api, logger),
		processed: store.NewProcessedOrders(filepath.Join(dir, cfg.STORAGE.ProcessedOrders), logger),
		customers: store.NewCustomers(filepath.Join(dir, cfg.STORAGE.Customers), logger),
		writers:   writers,
		notifier:  notifier,
		logger:    logger,
	}
}

// Day is the calendar day of t in the store timezone, at midnight.
func (c *Coordinator) Day(t time.Time) time.Time {
	t = t.In(c.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.location)
}

// Run performs one pass for day. Failures are recorded in the report; only a
// held lock stops the run before the fetch.
func (c *Coordinator) Run(day time.Time) *Report {
	day = c.Day(day)
	report := NewReport(day)
	logger := c.logger.GetLoggerWithField("run", report.RunID)
	logger.Infof("Run:>Start %s", day.Format(store.DateLayout))
	defer func() {
		report.Finished = time.Now()
		logger.Infof("Run:>End exit code %d", report.ExitCode())
		telegram.SendMessageWithLogError(c.notifier, logger, report.Message())
	}()

	lock, err := store.Lock(c.dataDir)
	if err != nil {
		logger.Errorf("refusing to run: %v", err)
		report.Fail(FailureLocked, "lock "+c.dataDir, err)
		return report
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Errorf("%v", err)
		}
	}()

	if err := c.processed.Load(); err != nil {
		report.Fail(FailureStateLoad, "load processed orders", err)
	}
	if err := c.customers.Load(); err != nil {
		report.Fail(FailureStateLoad, "load customers", err)
	}

	fetched, err := c.fetcher.Fetch(day)
	report.Fetched = len(fetched)
	if err != nil {
		report.Fail(FailureFetch, "fetch orders", err)
	}

	fresh := c.newOrders(fetched)
	report.New = len(fresh)
	if len(fresh) == 0 {
		logger.Info("no new orders")
		return report
	}
	logger.Infof("%d new orders of %d fetched", len(fresh), len(fetched))

	for _, order := range fresh {
		c.customers.Upsert(order, day)
		c.processed.Mark(int64(order.ID))
	}
	report.Customers = c.customers.Len()

	run, err := NextRunNumber(c.dataDir, day)
	if err != nil {
		// nothing written and nothing persisted, the next run picks the orders up again
		report.Fail(FailureExport, "run number", err)
		return report
	}
	report.RunNumber = run
	logger.Infof("run number %d", run)

	batch := &export.Batch{
		Day:       day,
		RunNumber: run,
		Orders:    fresh,
		Fetched:   fetched,
		Customers: c.customers.Snapshot(),
	}
	for _, w := range c.writers {
		path, err := w.Write(batch)
		if err != nil {
			logger.Errorf("writer %s failed: %v", w.Name(), err)
			report.Fail(FailureExport, w.Name(), err)
			continue
		}
		report.Artifacts = append(report.Artifacts, Artifact{Writer: w.Name(), Path: path})
	}

	if err := c.processed.Persist(); err != nil {
		logger.Errorf("%v", err)
		report.Fail(FailurePersist, "persist processed orders", err)
	}
	if err := c.customers.Persist(); err != nil {
		logger.Errorf("%v", err)
		report.Fail(FailurePersist, "persist customers", err)
	}
	return report
}

// newOrders keeps the orders not yet processed, each id once, in fetch order.
func (c *Coordinator) newOrders(fetched []*models.Order) []*models.Order {
	seen := make(map[int64]struct{}, len(fetched))
	var fresh []*models.Order
	for _, order := range fetched {
		id := int64(order.ID)
		if c.processed.Contains(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			c.logger.Warnf("order %d returned twice by the store", id)
			continue
		}
		seen[id] = struct{}{}
		fresh = append(fresh, order)
	}
	return fresh
}
