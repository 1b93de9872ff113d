package net // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/net"

import (
	"net/url"
	"strings"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
)

// URLBuilder interface
type URLBuilder interface {
	GetURL(req request.Request) string
}

// QueryEnricher adds authentication parameters to the query
type QueryEnricher interface {
	GetEnrichedQuery(query url.Values) url.Values
}

// StoreURLBuilder composes <store>/<prefix>/<version>/<endpoint>?<query>
type StoreURLBuilder struct {
	Options       options.Basic
	QueryEnricher QueryEnricher
}

// GetURL ...
func (b *StoreURLBuilder) GetURL(req request.Request) string {
	base := strings.TrimRight(b.Options.URL, "/")
	if b.Options.Options.WPAPI {
		base += "/" + strings.Trim(b.Options.Options.WPAPIPrefix, "/")
	} else {
		base += "/wc-api"
	}
	base += "/" + strings.Trim(b.Options.Options.Version, "/") + "/" + strings.TrimLeft(req.Endpoint, "/")

	values := url.Values{}
	for k, v := range req.Values {
		values[k] = append([]string(nil), v...)
	}
	if b.QueryEnricher != nil {
		values = b.QueryEnricher.GetEnrichedQuery(values)
	}
	if len(values) == 0 {
		return base
	}
	return base + "?" + values.Encode()
}
