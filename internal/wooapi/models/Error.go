package models

import "fmt"

// ErrorWoo is the error body returned by the WooCommerce REST API.
// Status is filled from the HTTP response when the body carries none.
type ErrorWoo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		Status int               `json:"status"`
		Params map[string]string `json:"params"`
	} `json:"data"`
}

func (e *ErrorWoo) Error() string {
	return fmt.Sprintf("code:%s; message:%s; status:%d; params:%v;",
		e.Code,
		e.Message,
		e.Data.Status,
		e.Data.Params,
	)
}
