// Package wootest runs an in-process WooCommerce orders endpoint for tests.
package wootest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/julienschmidt/httprouter"
)

const (
	Key    = "ck_test"
	Secret = "cs_test"
)

type Store struct {
	Server *httptest.Server

	mu       sync.Mutex
	orders   []string
	failPage int
	status   int
	requests []url.Values
}

// NewStore serves the given raw order payloads, 100 per page at most.
func NewStore(orders ...string) *Store {
	s := &Store{orders: orders}

	router := httprouter.New()
	router.GET("/wp-json/wc/v3/orders", s.handleOrders)
	s.Server = httptest.NewServer(router)
	return s
}

func (s *Store) URL() string {
	return s.Server.URL
}

func (s *Store) Close() {
	s.Server.Close()
}

// SetOrders replaces the served orders.
func (s *Store) SetOrders(orders ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

// FailOn makes the given page answer with status.
func (s *Store) FailOn(page, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failPage = page
	s.status = status
}

// Requests returns the query of every request received so far.
func (s *Store) Requests() []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.requests...)
}

func (s *Store) handleOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := r.URL.Query()
	s.requests = append(s.requests, q)

	w.Header().Set("Content-Type", "application/json")
	if q.Get("consumer_key") != Key || q.Get("consumer_secret") != Secret {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"woocommerce_rest_cannot_view","message":"Sorry, you cannot list resources.","data":{"status":401}}`))
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 10
	}

	if s.failPage != 0 && page == s.failPage {
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(`{"code":"internal_error","message":"boom","data":{"status":` + strconv.Itoa(s.status) + `}}`))
		return
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(s.orders) {
		start = len(s.orders)
	}
	if end > len(s.orders) {
		end = len(s.orders)
	}
	totalPages := (len(s.orders) + perPage - 1) / perPage
	w.Header().Set("X-WP-Total", strconv.Itoa(len(s.orders)))
	w.Header().Set("X-WP-TotalPages", strconv.Itoa(totalPages))

	_, _ = w.Write([]byte("[" + strings.Join(s.orders[start:end], ",") + "]"))
}
