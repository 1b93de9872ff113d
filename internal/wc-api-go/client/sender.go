package client // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/client"

import (
	"net/http"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
)

// Sender interface
type Sender interface {
	Send(req request.Request) (resp *http.Response, err error)
}
