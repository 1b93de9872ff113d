package auth // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/auth"

import (
	"net/http"
	"net/url"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"
)

// BasicAuthentication carries the consumer key pair of the store
type BasicAuthentication struct {
	Options options.Basic
}

// GetEnrichedQuery adds consumer_key and consumer_secret when the store
// expects the credentials in the query string
func (b *BasicAuthentication) GetEnrichedQuery(p url.Values) url.Values {
	if p == nil {
		p = url.Values{}
	}
	if b.Options.Options.QueryStringAuth {
		p.Set("consumer_key", b.Options.Key)
		p.Set("consumer_secret", b.Options.Secret)
	}
	return p
}

// EnrichRequest sets the Authorization header when query string
// authentication is off
func (b *BasicAuthentication) EnrichRequest(r *http.Request, _ string) {
	if !b.Options.Options.QueryStringAuth {
		r.SetBasicAuth(b.Options.Key, b.Options.Secret)
	}
}
