package export

import (
	"path/filepath"
	"strconv"

	"github.com/dkerobean/WoocommerceOrders/internal/phone"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var DeliveryHeader = []string{
	"Date",
	"Pickup Name",
	"Pickup Phone",
	"Pickup Location",
	"Dropoff Name",
	"Dropoff Phone",
	"Dropoff Location",
	"Item Name",
	"Item Price",
	"Item Size",
}

var DeliveryOrdersHeader = []string{
	"Order ID",
	"Customer Name",
	"Phone",
	"Address",
	"Product",
	"Quantity",
	"Price",
}

// Pickup is the shop side of a delivery job, the same on every row.
type Pickup struct {
	Name     string
	Phone    string
	Location string
	ItemSize string
}

// DeliveryWriter writes the courier job sheet: one dropoff per line item.
// Rows need a dialable phone, orders without one are left out.
type DeliveryWriter struct {
	Dir    string
	Pickup Pickup
	logger *logging.Logger
}

func NewDeliveryWriter(dir string, pickup Pickup, logger *logging.Logger) *DeliveryWriter {
	return &DeliveryWriter{Dir: dir, Pickup: pickup, logger: logger.GetLoggerWithField("writer", "delivery_a_csv")}
}

func (w *DeliveryWriter) Name() string {
	return "delivery_a_csv"
}

func (w *DeliveryWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("DeliveryWriter.Write:>Start")
	defer w.logger.Debug("DeliveryWriter.Write:>End")

	var rows [][]string
	for _, order := range batch.Orders {
		canonical, ok := phone.Normalize(string(order.Billing.Phone))
		if !ok {
			w.logger.Warnf("order %d skipped: phone %q not representable", order.ID, order.Billing.Phone)
			continue
		}
		date := orderDate(order, batch.Day)
		name := order.Billing.FullName()
		for _, item := range order.LineItems {
			rows = append(rows, []string{
				date,
				w.Pickup.Name,
				w.Pickup.Phone,
				w.Pickup.Location,
				name,
				canonical,
				string(order.Billing.Address1),
				string(item.Name),
				item.Price.String(),
				w.Pickup.ItemSize,
			})
		}
	}

	path := filepath.Join(w.Dir, RunStamp("delivery", batch.Day, batch.RunNumber, "csv"))
	if err := writeCSV(path, Append, DeliveryHeader, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d rows appended to %s", len(rows), path)
	return path, nil
}

// DeliveryOrdersWriter writes the second courier's sheet. It keeps orders
// with an unusable phone and leaves the column blank.
type DeliveryOrdersWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewDeliveryOrdersWriter(dir string, logger *logging.Logger) *DeliveryOrdersWriter {
	return &DeliveryOrdersWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "delivery_b_csv")}
}

func (w *DeliveryOrdersWriter) Name() string {
	return "delivery_b_csv"
}

func (w *DeliveryOrdersWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("DeliveryOrdersWriter.Write:>Start")
	defer w.logger.Debug("DeliveryOrdersWriter.Write:>End")

	var rows [][]string
	for _, order := range batch.Orders {
		canonical, _ := phone.Normalize(string(order.Billing.Phone))
		id := strconv.FormatInt(int64(order.ID), 10)
		name := order.Billing.FullName()
		for _, item := range order.LineItems {
			rows = append(rows, []string{
				id,
				name,
				canonical,
				string(order.Billing.Address1),
				string(item.Name),
				strconv.FormatInt(int64(item.Quantity), 10),
				item.Price.String(),
			})
		}
	}

	path := filepath.Join(w.Dir, RunStamp("delivery_orders", batch.Day, batch.RunNumber, "csv"))
	if err := writeCSV(path, Append, DeliveryOrdersHeader, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d rows appended to %s", len(rows), path)
	return path, nil
}
