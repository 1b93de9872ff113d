package client // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/client"

import (
	"net/http"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/auth"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/net"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"
)

// Factory creates Client wired with the store options
type Factory struct{}

// NewClient builds a Client for the store; the only timeout is the one of
// the underlying http.Client
func (f *Factory) NewClient(o options.Basic) Client {
	httpClient := &http.Client{Timeout: o.Options.Timeout}
	return f.NewClientWithHTTP(o, httpClient)
}

// NewClientWithHTTP is NewClient with a caller supplied transport
func (f *Factory) NewClientWithHTTP(o options.Basic, httpClient net.Client) Client {
	authentication := &auth.BasicAuthentication{Options: o}

	sender := &net.Sender{}
	sender.SetRequestEnricher(authentication)
	sender.SetURLBuilder(&net.StoreURLBuilder{
		Options:       o,
		QueryEnricher: authentication,
	})
	sender.SetHTTPClient(httpClient)
	sender.SetRequestCreator(net.RequestCreatorFunc(http.NewRequest))

	return Client{sender: sender}
}

// NewClientWithSender is used when the transport must be replaced entirely
func NewClientWithSender(s Sender) Client {
	return Client{sender: s}
}
