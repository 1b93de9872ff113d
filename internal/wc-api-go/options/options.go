package options // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"

import "time"

// Basic structure contains the required parameters of a WooCommerce store
type Basic struct {
	URL     string
	Key     string
	Secret  string
	Options Advanced
}

// Advanced structure contains the optional parameters
type Advanced struct {
	WPAPI           bool
	WPAPIPrefix     string
	Version         string
	QueryStringAuth bool
	Timeout         time.Duration
}
