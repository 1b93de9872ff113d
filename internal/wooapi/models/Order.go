package models

import (
	"sort"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

type Billing struct {
	FirstName String `json:"first_name"`
	LastName  String `json:"last_name"`
	Company   String `json:"company"`
	Address1  String `json:"address_1"`
	Address2  String `json:"address_2"`
	City      String `json:"city"`
	State     String `json:"state"`
	Postcode  String `json:"postcode"`
	Country   String `json:"country"`
	Email     String `json:"email"`
	Phone     String `json:"phone"`

	Problems []string `json:"-"`
}

func (b *Billing) UnmarshalJSON(data []byte) error {
	problems, err := decodeFields(data, map[string]interface{}{
		"first_name": &b.FirstName,
		"last_name":  &b.LastName,
		"company":    &b.Company,
		"address_1":  &b.Address1,
		"address_2":  &b.Address2,
		"city":       &b.City,
		"state":      &b.State,
		"postcode":   &b.Postcode,
		"country":    &b.Country,
		"email":      &b.Email,
		"phone":      &b.Phone,
	})
	b.Problems = problems
	return err
}

// FullName is "first last" with blanks dropped.
func (b Billing) FullName() string {
	return strings.TrimSpace(strings.Join(strings.Fields(string(b.FirstName)+" "+string(b.LastName)), " "))
}

type LineItem struct {
	ID        Int    `json:"id"`
	Name      String `json:"name"`
	ProductID Int    `json:"product_id"`
	Quantity  Int    `json:"quantity"`
	Sku       String `json:"sku"`
	Price     Money  `json:"price"`
	Total     Money  `json:"total"`

	Problems []string `json:"-"`
}

func (l *LineItem) UnmarshalJSON(data []byte) error {
	problems, err := decodeFields(data, map[string]interface{}{
		"id":         &l.ID,
		"name":       &l.Name,
		"product_id": &l.ProductID,
		"quantity":   &l.Quantity,
		"sku":        &l.Sku,
		"price":      &l.Price,
		"total":      &l.Total,
	})
	l.Problems = problems
	return err
}

// Order is the part of a WooCommerce order the exports read. It is decoded
// field by field, missing or mistyped fields stay zero.
type Order struct {
	ID           Int        `json:"id"`
	Number       String     `json:"number"`
	Status       String     `json:"status"`
	Currency     String     `json:"currency"`
	Total        Money      `json:"total"`
	CustomerID   Int        `json:"customer_id"`
	CustomerNote String     `json:"customer_note"`
	DateCreated  Time       `json:"date_created"`
	Billing      Billing    `json:"billing"`
	LineItems    []LineItem `json:"line_items"`

	// Raw is the payload as received from the store.
	Raw jsoniter.RawMessage `json:"-"`
	// Problems lists the fields that could not be decoded.
	Problems []string `json:"-"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	var items []jsoniter.RawMessage
	problems, err := decodeFields(data, map[string]interface{}{
		"id":            &o.ID,
		"number":        &o.Number,
		"status":        &o.Status,
		"currency":      &o.Currency,
		"total":         &o.Total,
		"customer_id":   &o.CustomerID,
		"customer_note": &o.CustomerNote,
		"date_created":  &o.DateCreated,
		"billing":       &o.Billing,
		"line_items":    &items,
	})
	if err != nil {
		return err
	}

	o.LineItems = o.LineItems[:0]
	for i, raw := range items {
		var item LineItem
		if err := json.Unmarshal(raw, &item); err != nil {
			problems = append(problems, "line_items: item "+strconv.Itoa(i)+": "+err.Error())
			continue
		}
		for _, p := range item.Problems {
			problems = append(problems, "line_items: item "+strconv.Itoa(i)+": "+p)
		}
		o.LineItems = append(o.LineItems, item)
	}
	for _, p := range o.Billing.Problems {
		problems = append(problems, "billing: "+p)
	}
	sort.Strings(problems)

	o.Problems = problems
	o.Raw = append(jsoniter.RawMessage(nil), data...)
	return nil
}

// ProductNames joins the names of all line items with sep.
func (o *Order) ProductNames(sep string) string {
	names := make([]string, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		names = append(names, string(item.Name))
	}
	return strings.Join(names, sep)
}
