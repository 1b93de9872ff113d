package wooapi

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/client"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
	optionsWoo "github.com/dkerobean/WoocommerceOrders/internal/wooapi/options"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type WOOAPI interface {
	OrderList(opts *optionsWoo.OrderList) ([]*models.Order, error)
}

type wooapi struct {
	api    client.Client
	logger *logging.Logger
}

// OrderList loads one page of orders. Records that are not JSON objects are
// logged and left out, the rest of the page is kept.
func (w *wooapi) OrderList(opts *optionsWoo.OrderList) ([]*models.Order, error) {
	logger := w.logger
	logger.Debug("OrderList:>Start")
	defer logger.Debug("OrderList:>End")
	endpoint := "orders"

	params, err := opts.Values()
	if err != nil {
		return nil, err
	}
	logger.Debugf("Endpoint: %s, params: %s", endpoint, params.Encode())

	if r, err := w.api.Get(endpoint, params); err != nil {
		return nil, errors.Wrapf(err, "failed to send request to Woo Api, endpoint:%s", endpoint)
	} else if r.StatusCode != http.StatusOK {
		defer closeBody(logger, r.Body)
		if bodyBytes, err := io.ReadAll(r.Body); err != nil {
			return nil, errors.Wrapf(err, "failed io.ReadAll(r.Body), status:%d", r.StatusCode)
		} else {
			logger.Debug(string(bodyBytes))
			ErrorWoo := new(models.ErrorWoo)
			err := json.Unmarshal(bodyBytes, ErrorWoo)
			if err != nil || ErrorWoo.Code == "" {
				ErrorWoo.Code = "http_error"
				ErrorWoo.Message = http.StatusText(r.StatusCode)
			}
			if ErrorWoo.Data.Status == 0 {
				ErrorWoo.Data.Status = r.StatusCode
			}
			return nil, ErrorWoo
		}
	} else {
		defer closeBody(logger, r.Body)
		if bodyBytes, err := io.ReadAll(r.Body); err != nil {
			return nil, errors.Wrapf(err, "failed io.ReadAll(r.Body), endpoint:%s", endpoint)
		} else {
			logger.Debugf("X-WP-TotalPages: %s", r.Header.Get("X-WP-TotalPages"))
			var page []jsoniter.RawMessage
			err := json.Unmarshal(bodyBytes, &page)
			if err != nil {
				return nil, errors.Wrapf(err, "failed json.Unmarshal(), endpoint:%s", endpoint)
			}

			orders := make([]*models.Order, 0, len(page))
			for i, raw := range page {
				order := new(models.Order)
				if err := json.Unmarshal(raw, order); err != nil {
					logger.Errorf("skip malformed order #%d on page %d: %v", i, opts.Page, err)
					continue
				}
				if order.ID == 0 {
					logger.Errorf("skip order #%d on page %d without id", i, opts.Page)
					continue
				}
				if len(order.Problems) > 0 {
					logger.Warnf("order %d decoded with defaults: %v", order.ID, order.Problems)
				}
				orders = append(orders, order)
			}
			return orders, nil
		}
	}
}

func closeBody(logger *logging.Logger, body io.ReadCloser) {
	err := body.Close()
	if err != nil {
		logger.Errorf("failed Body.Close()")
	}
}

// NewAPI builds the orders API of the configured store.
func NewAPI(cfg *config.Config, logger *logging.Logger) WOOAPI {
	factory := client.Factory{}

	api := factory.NewClient(StoreOptions(cfg))

	return NewAPIWithClient(api, logger)
}

func NewAPIWithClient(api client.Client, logger *logging.Logger) WOOAPI {
	return &wooapi{
		api:    api,
		logger: logger,
	}
}

func StoreOptions(cfg *config.Config) options.Basic {
	return options.Basic{
		URL:    cfg.WOOCOMMERCE.URL,
		Key:    cfg.WOOCOMMERCE.Key,
		Secret: cfg.WOOCOMMERCE.Secret,
		Options: options.Advanced{
			WPAPI:           true,
			WPAPIPrefix:     "/wp-json/",
			Version:         cfg.WOOCOMMERCE.Version,
			QueryStringAuth: cfg.WOOCOMMERCE.QueryStringAuth,
			Timeout:         cfg.RequestTimeout(),
		},
	}
}
