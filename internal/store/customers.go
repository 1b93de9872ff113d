package store

import (
	"sort"
	"strconv"
	"time"

	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

const DateLayout = "2006-01-02"

// Customer is the accumulated profile of one store customer. Contact fields
// hold the billing values of the latest order.
type Customer struct {
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	LastOrderDate string `json:"last_order_date"`
	TotalOrders   int    `json:"total_orders"`
}

// CustomerEntry is a Customer together with its key.
type CustomerEntry struct {
	ID string
	Customer
}

// Customers is the customer database keyed by WooCommerce customer id. Guest
// orders share the key "0".
type Customers struct {
	path      string
	customers map[string]*Customer
	logger    *logging.Logger
}

func NewCustomers(path string, logger *logging.Logger) *Customers {
	return &Customers{
		path:      path,
		customers: make(map[string]*Customer),
		logger:    logger,
	}
}

// Load follows the same rules as ProcessedOrders.Load.
func (c *Customers) Load() error {
	c.logger.Info("Customers.Load:>Start")
	defer c.logger.Info("Customers.Load:>End")

	c.customers = make(map[string]*Customer)

	var customers map[string]*Customer
	found, err := readJSON(c.path, &customers)
	if err != nil {
		c.logger.Errorf("customers database %s unreadable, starting empty: %v", c.path, err)
		return err
	}
	if !found {
		c.logger.Infof("customers database %s not found, starting empty", c.path)
		return nil
	}

	for id, customer := range customers {
		if customer == nil {
			continue
		}
		c.customers[id] = customer
	}
	c.logger.Infof("loaded %d customers from %s", len(c.customers), c.path)
	return nil
}

// Upsert attributes order to its customer: the counter goes up by one and
// the contact fields are overwritten with the order's billing values.
func (c *Customers) Upsert(order *models.Order, day time.Time) {
	id := strconv.FormatInt(int64(order.CustomerID), 10)
	billing := order.Billing

	total := 0
	if existing, ok := c.customers[id]; ok {
		total = existing.TotalOrders
	}

	c.customers[id] = &Customer{
		Email:         string(billing.Email),
		Phone:         string(billing.Phone),
		FirstName:     string(billing.FirstName),
		LastName:      string(billing.LastName),
		Address:       string(billing.Address1),
		City:          string(billing.City),
		LastOrderDate: day.Format(DateLayout),
		TotalOrders:   total + 1,
	}
	c.logger.Debugf("customer %s upserted, total orders %d", id, total+1)
}

func (c *Customers) Get(id string) (Customer, bool) {
	customer, ok := c.customers[id]
	if !ok {
		return Customer{}, false
	}
	return *customer, true
}

func (c *Customers) Len() int {
	return len(c.customers)
}

// Snapshot returns a copy of every customer ordered by id, numerically when
// both ids are numbers.
func (c *Customers) Snapshot() []CustomerEntry {
	entries := make([]CustomerEntry, 0, len(c.customers))
	for id, customer := range c.customers {
		entries = append(entries, CustomerEntry{ID: id, Customer: *customer})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, errA := strconv.ParseInt(entries[i].ID, 10, 64)
		b, errB := strconv.ParseInt(entries[j].ID, 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

func (c *Customers) Persist() error {
	c.logger.Info("Customers.Persist:>Start")
	defer c.logger.Info("Customers.Persist:>End")

	err := writeJSONAtomic(c.path, c.customers)
	if err != nil {
		return err
	}
	c.logger.Infof("saved %d customers to %s", len(c.customers), c.path)
	return nil
}
