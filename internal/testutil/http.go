package testutil

import (
	"net/http"
	"net/http/httptest"
)

// NewRequest creates a body-less HTTP request for handler tests.
// target may carry a query string ("/?region=World").
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}
