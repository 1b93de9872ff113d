package wooapi

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkerobean/WoocommerceOrders/internal/config"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/client"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/models"
	optionsWoo "github.com/dkerobean/WoocommerceOrders/internal/wooapi/options"
	"github.com/dkerobean/WoocommerceOrders/internal/wooapi/wootest"
	"github.com/dkerobean/WoocommerceOrders/pkg/logging"
)

func newTestAPI(t *testing.T, store *wootest.Store) WOOAPI {
	t.Helper()
	cfg := config.Default()
	cfg.WOOCOMMERCE.URL = store.URL()
	cfg.WOOCOMMERCE.Key = wootest.Key
	cfg.WOOCOMMERCE.Secret = wootest.Secret
	return NewAPI(cfg, logging.New(&bytes.Buffer{}, true))
}

func TestOrderList(t *testing.T) {
	store := wootest.NewStore(
		wootest.Order(101, 7, "2024-03-05T10:15:00", wootest.Billing{FirstName: "Ama", Phone: "0558676095"},
			wootest.Item{Name: "Shea Butter", Price: "25.50", Quantity: 2}),
		`{"id": "102", "customer_id": null, "billing": [], "line_items": [{"name": "Soap", "price": 10, "quantity": "3"}]}`,
		`"not an order"`,
		`{"customer_id": 4}`,
	)
	defer store.Close()

	api := newTestAPI(t, store)
	day := time.Date(2024, 3, 5, 13, 0, 0, 0, time.UTC)
	orders, err := api.OrderList((&optionsWoo.OrderList{Page: 1, PerPage: 100}).Day(day))
	require.NoError(t, err)
	require.Len(t, orders, 2)

	assert.Equal(t, models.Int(101), orders[0].ID)
	assert.Equal(t, models.Int(7), orders[0].CustomerID)
	assert.Equal(t, "Ama", string(orders[0].Billing.FirstName))
	assert.Equal(t, "25.5", orders[0].LineItems[0].Price.String())
	assert.Equal(t, 2024, orders[0].DateCreated.Year())
	assert.Empty(t, orders[0].Problems)

	assert.Equal(t, models.Int(102), orders[1].ID)
	assert.Equal(t, models.Int(0), orders[1].CustomerID)
	assert.Equal(t, "", string(orders[1].Billing.Phone))
	assert.Equal(t, models.Int(3), orders[1].LineItems[0].Quantity)
	assert.Equal(t, "10", orders[1].LineItems[0].Price.String())
	assert.NotEmpty(t, orders[1].Problems)

	requests := store.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "100", requests[0].Get("per_page"))
	assert.Equal(t, "1", requests[0].Get("page"))
	assert.Equal(t, "2024-03-05T00:00:00", requests[0].Get("after"))
	assert.Equal(t, "2024-03-06T00:00:00", requests[0].Get("before"))
}

func TestOrderListErrorStatus(t *testing.T) {
	store := wootest.NewStore()
	defer store.Close()
	store.FailOn(1, http.StatusInternalServerError)

	api := newTestAPI(t, store)
	orders, err := api.OrderList(&optionsWoo.OrderList{Page: 1, PerPage: 100})
	assert.Nil(t, orders)

	errorWoo, ok := err.(*models.ErrorWoo)
	require.True(t, ok, "expected *models.ErrorWoo, got %T", err)
	assert.Equal(t, "internal_error", errorWoo.Code)
	assert.Equal(t, http.StatusInternalServerError, errorWoo.Data.Status)
}

func TestOrderListUnauthorized(t *testing.T) {
	store := wootest.NewStore()
	defer store.Close()

	cfg := config.Default()
	cfg.WOOCOMMERCE.URL = store.URL()
	cfg.WOOCOMMERCE.Key = "wrong"
	cfg.WOOCOMMERCE.Secret = "wrong"
	api := NewAPI(cfg, logging.New(&bytes.Buffer{}, false))

	_, err := api.OrderList(&optionsWoo.OrderList{Page: 1, PerPage: 100})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "woocommerce_rest_cannot_view")
	assert.Contains(t, err.Error(), "status:401")
}

func TestOrderListTransportError(t *testing.T) {
	store := wootest.NewStore()
	url := store.URL()
	store.Close()

	cfg := config.Default()
	cfg.WOOCOMMERCE.URL = url
	cfg.WOOCOMMERCE.Key = wootest.Key
	cfg.WOOCOMMERCE.Secret = wootest.Secret
	api := NewAPI(cfg, logging.New(&bytes.Buffer{}, false))

	_, err := api.OrderList(&optionsWoo.OrderList{Page: 1, PerPage: 100})
	require.Error(t, err)
	_, isWoo := err.(*models.ErrorWoo)
	assert.False(t, isWoo)
	assert.Contains(t, err.Error(), "failed to send request to Woo Api")
}

type rawSender struct {
	status int
	body   string
}

func (s *rawSender) Send(request.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func TestOrderListLogsBodyVerbatim(t *testing.T) {
	buf := &bytes.Buffer{}
	body := `{"code":"rest_invalid_param","message":"per_page must be 100%d or less"}`
	api := NewAPIWithClient(client.NewClientWithSender(&rawSender{status: http.StatusBadRequest, body: body}), logging.New(buf, true))

	_, err := api.OrderList(&optionsWoo.OrderList{Page: 1, PerPage: 100})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "100%d or less")
	assert.NotContains(t, buf.String(), "%!d(MISSING)")

	errorWoo, ok := err.(*models.ErrorWoo)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, errorWoo.Data.Status)
}
