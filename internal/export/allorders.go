package export

import (
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/store"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

// AllOrdersWriter keeps the raw payload of every order the run fetched in
// all_orders.json, already processed ones included.
type AllOrdersWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewAllOrdersWriter(dir string, logger *logging.Logger) *AllOrdersWriter {
	return &AllOrdersWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "all_orders_json")}
}

func (w *AllOrdersWriter) Name() string {
	return "all_orders_json"
}

func (w *AllOrdersWriter) Write(batch *Batch) (string, error) {
	raw := make([]jsoniter.RawMessage, 0, len(batch.Fetched))
	for _, order := range batch.Fetched {
		if len(order.Raw) == 0 {
			continue
		}
		raw = append(raw, order.Raw)
	}

	path := filepath.Join(w.Dir, "all_orders.json")
	data, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return "", errors.Wrap(err, "failed json.MarshalIndent(all orders)")
	}
	if err := store.WriteFileAtomic(path, data, 0644); err != nil {
		return "", err
	}
	w.logger.Infof("%d raw orders written to %s", len(raw), path)
	return path, nil
}
