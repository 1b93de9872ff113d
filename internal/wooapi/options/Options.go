package options

import (
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/pkg/errors"
)

// WooCommerce expects ISO8601 without offset, interpreted in the store timezone
const TimeLayout = "2006-01-02T15:04:05"

const MaxPerPage = 100

// OrderList is the query of GET orders
type OrderList struct {
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	After   string `url:"after,omitempty"`
	Before  string `url:"before,omitempty"`
	Status  string `url:"status,omitempty"`
}

// Day limits the query to [day 00:00, next day 00:00) of the day's location
func (o *OrderList) Day(day time.Time) *OrderList {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	o.After = start.Format(TimeLayout)
	o.Before = start.AddDate(0, 0, 1).Format(TimeLayout)
	return o
}

func (o *OrderList) Values() (url.Values, error) {
	v, err := query.Values(o)
	if err != nil {
		return nil, errors.Wrap(err, "failed query.Values(OrderList)")
	}
	return v, nil
}
