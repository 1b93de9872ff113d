package client

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/options"
	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
)

// SenderMock imitates sending requests and receiving responses
type SenderMock struct {
	last     request.Request
	response http.Response
}

func (r *SenderMock) Send(req request.Request) (resp *http.Response, err error) {
	r.last = req
	return &r.response, nil
}

// httpClientMock records the outgoing request instead of sending it
type httpClientMock struct {
	last *http.Request
}

func (c *httpClientMock) Do(req *http.Request) (*http.Response, error) {
	c.last = req
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("[]")),
	}, nil
}

func TestGet(t *testing.T) {
	Assert := assert.New(t)

	parameters := url.Values{}
	parameters.Set("page", "2")

	sender := &SenderMock{response: http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("Hello GET!")),
	}}
	client := NewClientWithSender(sender)

	r, err := client.Get("orders", parameters)
	Assert.NoError(err)

	body, _ := io.ReadAll(r.Body)
	Assert.Equal("Hello GET!", string(body))
	Assert.Equal(http.MethodGet, sender.last.Method)
	Assert.Equal("orders", sender.last.Endpoint)
	Assert.Equal("2", sender.last.Values.Get("page"))

	err = r.Body.Close()
	if err != nil {
		t.Errorf("Failed to close body of response")
	}
}

func TestFactoryQueryStringAuth(t *testing.T) {
	Assert := assert.New(t)

	httpClient := &httpClientMock{}
	factory := Factory{}
	client := factory.NewClientWithHTTP(options.Basic{
		URL:    "https://shop.example.com/",
		Key:    "ck_1",
		Secret: "cs_1",
		Options: options.Advanced{
			WPAPI:           true,
			WPAPIPrefix:     "/wp-json/",
			Version:         "wc/v3",
			QueryStringAuth: true,
		},
	}, httpClient)

	parameters := url.Values{}
	parameters.Set("per_page", "100")
	_, err := client.Get("orders", parameters)
	Assert.NoError(err)

	u := httpClient.last.URL
	Assert.Equal("shop.example.com", u.Host)
	Assert.Equal("/wp-json/wc/v3/orders", u.Path)
	Assert.Equal("100", u.Query().Get("per_page"))
	Assert.Equal("ck_1", u.Query().Get("consumer_key"))
	Assert.Equal("cs_1", u.Query().Get("consumer_secret"))
	Assert.Empty(httpClient.last.Header.Get("Authorization"))
	// the caller's values are not mutated by the enricher
	Assert.Empty(parameters.Get("consumer_key"))
}

func TestFactoryHeaderAuth(t *testing.T) {
	Assert := assert.New(t)

	httpClient := &httpClientMock{}
	factory := Factory{}
	client := factory.NewClientWithHTTP(options.Basic{
		URL:    "https://shop.example.com",
		Key:    "ck_1",
		Secret: "cs_1",
		Options: options.Advanced{
			WPAPI:       true,
			WPAPIPrefix: "wp-json",
			Version:     "wc/v3",
		},
	}, httpClient)

	_, err := client.Get("orders", nil)
	Assert.NoError(err)

	key, secret, ok := httpClient.last.BasicAuth()
	Assert.True(ok)
	Assert.Equal("ck_1", key)
	Assert.Equal("cs_1", secret)
	Assert.Empty(httpClient.last.URL.Query().Get("consumer_key"))
	Assert.Equal("application/json", httpClient.last.Header.Get("Accept"))
}
