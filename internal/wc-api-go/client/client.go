package client // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/client"

import (
	"net/http"
	"net/url"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
)

// Client is upper level class which delegate all work to Sender
type Client struct {
	sender Sender
}

// Get Method loads data from Endpoint with specified parameters
func (c *Client) Get(endpoint string, parameters url.Values) (*http.Response, error) {
	return c.sender.Send(request.Request{
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Values:   parameters,
	})
}
