package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://deploy.doppler.com", 1500*time.Millisecond, nil)
//	resp, err := client.R().Get("/v1/variables")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient bound to baseURL.
//
// Every request carries headers and "Accept: application/json", and is
// bounded by timeout. resty's own retry mechanism is left disabled; callers
// own the retry policy.
func NewHTTPClient(baseURL string, timeout time.Duration, headers map[string]string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeaders(headers)

	return &HTTPClient{Client: client}
}
