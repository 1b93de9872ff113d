package wootest

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Billing struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address_1"`
	City      string `json:"city"`
	State     string `json:"state"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Item struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order renders a WooCommerce order payload.
func Order(id, customerID int, created string, billing Billing, items ...Item) string {
	if items == nil {
		items = []Item{}
	}
	b, err := json.Marshal(map[string]interface{}{
		"id":           id,
		"customer_id":  customerID,
		"status":       "processing",
		"date_created": created,
		"billing":      billing,
		"line_items":   items,
	})
	if err != nil {
		panic(err)
	}
	return string(b)
}
