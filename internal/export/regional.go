package export

import (
	"path/filepath"
	"strconv"

	"github.com/dkerobean/WoocommerceOrders/internal/phone"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

var RegionalHeader = []string{
	"DATE [dd/mm/yyyy]",
	"PRODUCT",
	"UNIT PRICE",
	"NAME OF CUSTOMER",
	"REGION",
	"LOCATION OF CUSTOMER",
	"PHONE NUMBER",
	"QUANTITY OF PRODUCTS ORDERED",
	"COMMENT",
}

// RegionalWriter writes the distributor sheet, one row per line item. Orders
// without a usable phone are left out.
type RegionalWriter struct {
	Dir    string
	logger *logging.Logger
}

func NewRegionalWriter(dir string, logger *logging.Logger) *RegionalWriter {
	return &RegionalWriter{Dir: dir, logger: logger.GetLoggerWithField("writer", "regional_csv")}
}

func (w *RegionalWriter) Name() string {
	return "regional_csv"
}

func (w *RegionalWriter) Write(batch *Batch) (string, error) {
	w.logger.Debug("RegionalWriter.Write:>Start")
	defer w.logger.Debug("RegionalWriter.Write:>End")

	var rows [][]string
	for _, order := range batch.Orders {
		canonical, ok := phone.Normalize(string(order.Billing.Phone))
		if !ok {
			w.logger.Warnf("order %d skipped: phone %q not representable", order.ID, order.Billing.Phone)
			continue
		}
		date := orderDate(order, batch.Day)
		name := order.Billing.FullName()
		region := Region(string(order.Billing.State))
		for _, item := range order.LineItems {
			rows = append(rows, []string{
				date,
				string(item.Name),
				item.Price.String(),
				name,
				region,
				string(order.Billing.Address1),
				canonical,
				strconv.FormatInt(int64(item.Quantity), 10),
				"",
			})
		}
	}

	path := filepath.Join(w.Dir, RunStamp("vdl_export", batch.Day, batch.RunNumber, "csv"))
	if err := writeCSV(path, Append, RegionalHeader, rows); err != nil {
		return "", err
	}
	w.logger.Infof("%d rows appended to %s", len(rows), path)
	return path, nil
}
