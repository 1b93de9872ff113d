package net

import (
	"io"
	"net/http"
)

// RequestEnricher adds Basic Authentication settings in Request in case of Basic Authentication
type RequestEnricher interface {
	EnrichRequest(r *http.Request, URL string)
}

// RequestCreator builds http.Request, http.NewRequest satisfies it via RequestCreatorFunc
type RequestCreator interface {
	NewRequest(method, url string, body io.Reader) (*http.Request, error)
}

// RequestCreatorFunc ...
type RequestCreatorFunc func(method, url string, body io.Reader) (*http.Request, error)

// NewRequest ...
func (f RequestCreatorFunc) NewRequest(method, url string, body io.Reader) (*http.Request, error) {
	return f(method, url, body)
}

// Client is the part of http.Client used by Sender
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
