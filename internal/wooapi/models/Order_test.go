package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDecodeTolerant(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`{
		"id": 55,
		"customer_id": "12",
		"date_created": "2024-01-02T08:09:10",
		"billing": {"first_name": "Kofi", "last_name": null, "phone": 233201234567, "email": {"x": 1}},
		"line_items": [
			{"name": "Cocoa", "price": "12.75", "quantity": 2},
			"garbage",
			{"name": "Honey", "price": "n/a", "quantity": null}
		]
	}`), &o)
	require.NoError(t, err)

	assert.Equal(t, Int(55), o.ID)
	assert.Equal(t, Int(12), o.CustomerID)
	assert.Equal(t, "Kofi", string(o.Billing.FirstName))
	assert.Equal(t, "", string(o.Billing.LastName))
	assert.Equal(t, "233201234567", string(o.Billing.Phone))
	assert.Equal(t, "", string(o.Billing.Email))
	assert.Equal(t, "Kofi", o.Billing.FullName())

	require.Len(t, o.LineItems, 2)
	assert.Equal(t, "12.75", o.LineItems[0].Price.String())
	assert.Equal(t, "0", o.LineItems[1].Price.String())
	assert.Equal(t, Int(0), o.LineItems[1].Quantity)
	assert.Equal(t, "Cocoa, Honey", o.ProductNames(", "))

	assert.Equal(t, 8, o.DateCreated.Hour())
	assert.NotEmpty(t, o.Raw)
	assert.Len(t, o.Problems, 3)
}

func TestOrderDecodeNotObject(t *testing.T) {
	var o Order
	err := json.Unmarshal([]byte(`[1,2,3]`), &o)
	assert.Error(t, err)
}

func TestOrderMissingFields(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9}`), &o))

	assert.Equal(t, Int(9), o.ID)
	assert.True(t, o.DateCreated.IsZero())
	assert.Empty(t, o.LineItems)
	assert.Equal(t, "", o.Billing.FullName())
	assert.Equal(t, "", o.ProductNames(", "))
	assert.Empty(t, o.Problems)
}

func TestErrorWoo(t *testing.T) {
	e := &ErrorWoo{Code: "woocommerce_rest_invalid", Message: "bad"}
	e.Data.Status = 400
	assert.Equal(t, "code:woocommerce_rest_invalid; message:bad; status:400; params:map[];", e.Error())
}

func TestOrderBracketedStrings(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 77,
		"billing": {"first_name": "{Ama}", "address_1": "[Block 5] Ring Road"},
		"line_items": [{"name": "[Promo] Shea Butter", "price": "25", "quantity": 1}]
	}`), &o))

	assert.Equal(t, "[Block 5] Ring Road", string(o.Billing.Address1))
	assert.Equal(t, "{Ama}", string(o.Billing.FirstName))
	require.Len(t, o.LineItems, 1)
	assert.Equal(t, "[Promo] Shea Butter", string(o.LineItems[0].Name))
	assert.Empty(t, o.Problems)
}

func TestIntRejectsFraction(t *testing.T) {
	tests := []struct {
		in      string
		want    Int
		problem bool
	}{
		{`101`, 101, false},
		{`"101"`, 101, false},
		{`101.0`, 101, false},
		{`1e3`, 1000, false},
		{`"101.9"`, 0, true},
		{`2.5`, 0, true},
		{`null`, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var i Int
			err := json.Unmarshal([]byte(tt.in), &i)
			assert.Equal(t, tt.want, i)
			assert.Equal(t, tt.problem, err != nil)
		})
	}

	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "line_items": [{"name": "Soap", "quantity": "1.5"}]}`), &o))
	require.Len(t, o.LineItems, 1)
	assert.Equal(t, Int(0), o.LineItems[0].Quantity)
	assert.Len(t, o.Problems, 1)
}
