package sync

import (
	"time"

	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/wooapi"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
	optionsWoo "github.com/dkerobean/WoocommerceOrders/internal/wooapi/options"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

// Fetcher pulls every order of one day from the store, page by page.
type Fetcher struct {
	api    wooapi.WOOAPI
	logger *logging.Logger
}

func NewFetcher(api wooapi.WOOAPI, logger *logging.Logger) *Fetcher {
	return &Fetcher{api: api, logger: logger}
}

// Fetch requests pages until the store returns an empty one. A failed page
// stops the walk: the orders of the earlier pages are returned together with
// the error.
func (f *Fetcher) Fetch(day time.Time) ([]*models.Order, error) {
	logger := f.logger
	logger.Info("Fetch:>Start")
	defer logger.Info("Fetch:>End")

	opts := (&optionsWoo.OrderList{PerPage: optionsWoo.MaxPerPage}).Day(day)
	logger.Infof("orders after %s before %s", opts.After, opts.Before)

	var orders []*models.Order
	i := 1
	for {
		opts.Page = i
		page, err := f.api.OrderList(opts)
		if err != nil {
			logger.Errorf("failed OrderList(page=%d), %d orders fetched so far: %v", i, len(orders), err)
			return orders, errors.Wrapf(err, "failed OrderList(page=%d)", i)
		}
		if len(page) == 0 {
			break
		}
		logger.Debugf("page %d: %d orders", i, len(page))
		orders = append(orders, page...)
		i++
	}

	logger.Infof("fetched %d orders in %d pages", len(orders), i-1)
	return orders, nil
}
