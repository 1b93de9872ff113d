// Package export turns a run's new orders into the files downstream partners
// pick up from the data directory.
package export

import (
	"fmt"
	"time"

	"github.com/dkerobean/WoocommerceOrders/internal/store"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
)

const (
	// FileDateLayout stamps file names: new_orders_05-03-2024_run1.json
	FileDateLayout = "02-01-2006"
	// RowDateLayout is the date written inside CSV rows.
	RowDateLayout = "02/01/2006"
)

// Batch is everything one run hands to the writers.
type Batch struct {
	Day       time.Time
	RunNumber int
	// Orders are the orders not exported by any earlier run.
	Orders []*models.Order
	// Fetched is every order the run fetched, processed or not.
	Fetched []*models.Order
	// Customers is the customer database after this run's upserts.
	Customers []store.CustomerEntry
}

type Writer interface {
	Name() string
	// Write produces the writer's artifact and returns its path.
	Write(batch *Batch) (string, error)
}

// RunStamp builds a run stamped file name, prefix_dd-mm-yyyy_runN.ext.
func RunStamp(prefix string, day time.Time, run int, ext string) string {
	return fmt.Sprintf("%s_%s_run%d.%s", prefix, day.Format(FileDateLayout), run, ext)
}

// orderDate is the order's creation date, the run day when the store sent
// none.
func orderDate(order *models.Order, day time.Time) string {
	if order.DateCreated.IsZero() {
		return day.Format(RowDateLayout)
	}
	return order.DateCreated.Format(RowDateLayout)
}
