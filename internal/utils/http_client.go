package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. The embedding exposes every resty method
// directly while leaving room for application-specific extensions.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent HTTPClient with its own connection
// pool and state. Every request it issues accepts JSON responses.
func NewHTTPClient() *HTTPClient {
	c := resty.New()
	c.SetHeader("Accept", "application/json")

	return &HTTPClient{Client: c}
}
