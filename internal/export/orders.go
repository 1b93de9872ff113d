package export

import (
	"path/filepath"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/dkerobean/WoocommerceOrders/internal/phone"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var OrdersHeader = []string{
	"Count",
	"Phone",
	"Location",
	"Product",
	"Price (cedis)",
	"Delivery fee",
	"Net Amount",
	"Date",
	"Status",
	"Created by",
}

// OrderSheet holds the constant columns of the orders sheet.
type OrderSheet struct {
	Separator   string
	DeliveryFee decimal.Decimal
	Status      string
	CreatedBy   string
}

// OrdersWriter writes the dispatch sheet, one row per order numbered from 1
// within the run. Price is the sum of the line item prices, Net Amount is
// Price less the delivery fee. A phone that is not Ghanaian is left blank.
type OrdersWriter struct {
	Dir    string
	Sheet  OrderSheet
	logger *logging.Logger
}

func NewOrdersWriter(dir string, sheet OrderSheet, logger *logging.Logger) *OrdersWriter {
	return &OrdersWriter{Dir: dir, Sheet: sheet, logger: logger.GetLoggerWithField("writer", "orders_csv")}
}

func (w *OrdersWriter) Name() string {
	return "orders_csv"
}

func (w *OrdersWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("OrdersWriter.Write:>Start")
	defer w.logger.Debug("OrdersWriter.Write:>End")

	rows := make([][]string, 0, len(batch.Orders))
	for i, order := range batch.Orders {
		canonical, _ := phone.Normalize(string(order.Billing.Phone))
		price := decimal.Zero
		for _, item := range order.LineItems {
			price = price.Add(item.Price.Decimal)
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			canonical,
			string(order.Billing.Address1),
			order.ProductNames(w.Sheet.Separator),
			price.String(),
			w.Sheet.DeliveryFee.String(),
			price.Sub(w.Sheet.DeliveryFee).String(),
			orderDate(order, batch.Day),
			w.Sheet.Status,
			w.Sheet.CreatedBy,
		})
	}

	path := filepath.Join(w.Dir, RunStamp("new_orders", batch.Day, batch.RunNumber, "csv"))
	if err := writeCSV(path, Append, OrdersHeader, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d orders appended to %s", len(rows), path)
	return path, nil
}
