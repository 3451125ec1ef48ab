package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds the client so every resty
// method stays available.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for JSON and
// identifies itself with userAgent when one is given.
func NewHTTPClient(userAgent ...string) *HTTPClient {
	c := resty.New().SetHeader("Accept", "application/json")
	if len(userAgent) > 0 && userAgent[0] != "" {
		c.SetHeader("User-Agent", userAgent[0])
	}
	return &HTTPClient{Client: c}
}
