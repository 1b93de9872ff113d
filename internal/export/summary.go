package export

import (
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/phone"
	"github.com/dkerobean/WoocommerceOrders/internal/store"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// OrderSummary is one record of new_orders_*.json. PhoneNumber is null when
// the billing phone is not a Ghanaian number.
type OrderSummary struct {
	Location     string  `json:"location"`
	Product      string  `json:"product"`
	PhoneNumber  *string `json:"phone_number"`
	Email        *string `json:"email,omitempty"`
	CustomerName *string `json:"customer_name,omitempty"`
}

// SummaryWriter writes one JSON record per new order, replacing the run's
// file.
type SummaryWriter struct {
	Dir            string
	Separator      string
	IncludeContact bool
	logger         *logging.Logger
}

func NewSummaryWriter(dir, separator string, includeContact bool, logger *logging.Logger) *SummaryWriter {
	return &SummaryWriter{
		Dir:            dir,
		Separator:      separator,
		IncludeContact: includeContact,
		logger:         logger.GetLoggerWithField("writer", "orders_json"),
	}
}

func (w *SummaryWriter) Name() string {
	return "orders_json"
}

func (w *SummaryWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("SummaryWriter.Write:>Start")
	defer w.logger.Debug("SummaryWriter.Write:>End")

	records := make([]OrderSummary, 0, len(batch.Orders))
	for _, order := range batch.Orders {
		record := OrderSummary{
			Location: string(order.Billing.Address1),
			Product:  order.ProductNames(w.Separator),
		}
		if canonical, ok := phone.Normalize(string(order.Billing.Phone)); ok {
			record.PhoneNumber = &canonical
		} else {
			w.logger.Debugf("order %d: phone %q not representable, written as null", order.ID, order.Billing.Phone)
		}
		if w.IncludeContact {
			email := string(order.Billing.Email)
			name := order.Billing.FullName()
			record.Email = &email
			record.CustomerName = &name
		}
		records = append(records, record)
	}

	path := filepath.Join(w.Dir, RunStamp("new_orders", batch.Day, batch.RunNumber, "json"))
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", errors.Wrap(err, "failed json.MarshalIndent(orders)")
	}
	if err := store.WriteFileAtomic(path, data, 0644); err != nil {
		return "", err
	}
	w.logger.Infof("%d orders written to %s", len(records), path)
	return path, nil
}
