// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testQuery = models.VariablesQuery{Environment: "staging", Pipeline: "pipe-1"}

// newTestAdapter builds an httpVariablesAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, timeout time.Duration) VariablesAdapter {
	t.Helper()

	cfg := &config.ClientConfig{
		Host:           serverURL,
		RequestTimeout: timeout,
		RequestHeaders: map[string]string{
			config.HeaderAPIKey:        "secret",
			config.HeaderClientVersion: "1.2.3",
			config.HeaderClientSDK:     "go",
		},
	}

	return NewHTTPVariablesAdapter(cfg)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// ── FetchVariables ──────────────────────────────────────────────────────────

func TestFetchVariables_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, VariablesPath, r.URL.Path)
		assert.Equal(t, "staging", r.URL.Query().Get("environment"))
		assert.Equal(t, "pipe-1", r.URL.Query().Get("pipeline"))
		assert.Equal(t, "secret", r.Header.Get("api-key"))
		assert.Equal(t, "1.2.3", r.Header.Get("client-version"))
		assert.Equal(t, "go", r.Header.Get("client-sdk"))

		writeBody(w, http.StatusOK, `{"variables":{"A":"1","B":"2"}}`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.True(t, res.Success)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NoError(t, res.Err)
	require.NotNil(t, res.Body)
	assert.Equal(t, models.Variables{"A": "1", "B": "2"}, res.Body.Variables)
}

func TestFetchVariables_Messages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusUnauthorized, `{"messages":["bad key","try again"]}`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.ErrorIs(t, res.Err, ErrUnauthorized)
	require.NotNil(t, res.Body)
	assert.Equal(t, []string{"bad key", "try again"}, res.Body.Messages)
}

func TestFetchVariables_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusTooManyRequests, `{"messages":["slow down"]}`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusTooManyRequests, res.StatusCode)
	assert.ErrorIs(t, res.Err, ErrRateLimited)
}

// TestFetchVariables_NonJSONBody verifies that an undecodable body yields a
// nil Body rather than an error.
func TestFetchVariables_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Nil(t, res.Body)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
	assert.ErrorIs(t, res.Err, ErrBadGateway)
}

// TestFetchVariables_Non200IsNotSuccess verifies that only 200 counts.
func TestFetchVariables_Non200IsNotSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusCreated, `{"variables":{"A":"1"}}`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Error(t, res.Err)
}

func TestFetchVariables_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	res := newTestAdapter(t, srv.URL, 50*time.Millisecond).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Nil(t, res.Body)
	assert.Zero(t, res.StatusCode)
	assert.ErrorIs(t, res.Err, ErrTransport)
}

func TestFetchVariables_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := newTestAdapter(t, url, time.Second).FetchVariables(context.Background(), testQuery)

	assert.False(t, res.Success)
	assert.Nil(t, res.Body)
	assert.Zero(t, res.StatusCode)
	assert.ErrorIs(t, res.Err, ErrTransport)
}

// TestFetchVariables_LogsWithContextLogger verifies that request failures are
// logged through the logger attached to ctx.
func TestFetchVariables_LogsWithContextLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var buf bytes.Buffer
	ctx := logger.NewLoggerWithWriter("test", &buf).WithContext(context.Background())

	res := newTestAdapter(t, url, time.Second).FetchVariables(ctx, testQuery)

	assert.ErrorIs(t, res.Err, ErrTransport)
	assert.Contains(t, buf.String(), "variables request failed")
	assert.Contains(t, buf.String(), `"role":"test"`)
}

func TestFetchVariables_NoContextLogger(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `not json`)
	}))
	defer srv.Close()

	res := newTestAdapter(t, srv.URL, time.Second).FetchVariables(context.Background(), testQuery)

	assert.True(t, res.Success)
	assert.Nil(t, res.Body)
}
