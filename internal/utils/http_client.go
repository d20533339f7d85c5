package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client and adds the setup shared by outbound
// adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with its own resty.Client and connection pool.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// Configure sets the base URL, the per-request timeout and, when token is
// not blank, a bearer token sent with every request.
func (c *HTTPClient) Configure(baseURL string, timeout time.Duration, token string) *HTTPClient {
	c.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if token = strings.TrimSpace(token); token != "" {
		c.SetAuthToken(token)
	}
	return c
}
