package utils

import (
	"errors"
	"net/url"
	"strings"
)

// NormalizeBaseURL trims whitespace and trailing slashes from raw and makes
// sure it carries a scheme and a host. Addresses without a scheme are
// treated as http.
//
// Example:
//
//	NormalizeBaseURL("localhost:8080/")           // "http://localhost:8080"
//	NormalizeBaseURL("https://deploy.doppler.com") // "https://deploy.doppler.com"
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
