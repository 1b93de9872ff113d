package net // import "github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/net"

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/dkerobean/WoocommerceOrders/internal/wc-api-go/request"
)

// Sender provides HTTP Requests
type Sender struct {
	requestEnricher RequestEnricher
	urlBuilder      URLBuilder
	httpClient      Client
	requestCreator  RequestCreator
}

// Send method sends requests to WooCommerce API
func (s *Sender) Send(req request.Request) (resp *http.Response, err error) {
	request, err := s.prepareRequest(req)
	if err != nil {
		return nil, err
	}
	return s.httpClient.Do(request)
}

func (s *Sender) prepareRequest(req request.Request) (*http.Request, error) {
	URL := s.urlBuilder.GetURL(req)

	request, err := s.requestCreator.NewRequest(req.Method, URL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed NewRequest(%s, %s)", req.Method, req.Endpoint)
	}
	if s.requestEnricher != nil {
		s.requestEnricher.EnrichRequest(request, URL)
	}
	request.Header.Set("Accept", "application/json")
	return request, nil
}

// SetRequestEnricher ...
func (s *Sender) SetRequestEnricher(a RequestEnricher) {
	s.requestEnricher = a
}

// SetURLBuilder ...
func (s *Sender) SetURLBuilder(urlBuilder URLBuilder) {
	s.urlBuilder = urlBuilder
}

// SetHTTPClient ...
func (s *Sender) SetHTTPClient(c Client) {
	s.httpClient = c
}

// SetRequestCreator ...
func (s *Sender) SetRequestCreator(rc RequestCreator) {
	s.requestCreator = rc
}
