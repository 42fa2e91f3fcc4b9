package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/internal/utils"
	"github.com/MKhiriev/go-doppler-env/models"
)

// VariablesPath is the endpoint queried by [VariablesAdapter.FetchVariables].
const VariablesPath = "/v1/variables"

type httpVariablesAdapter struct {
	client *utils.HTTPClient
}

// NewHTTPVariablesAdapter constructs an HTTP/REST implementation of
// [VariablesAdapter]. The underlying client is bound to cfg.Host, sends
// cfg.RequestHeaders with every request and gives up on an attempt after
// cfg.RequestTimeout.
func NewHTTPVariablesAdapter(cfg *config.ClientConfig) VariablesAdapter {
	client := utils.NewHTTPClient(cfg.Host, cfg.RequestTimeout, cfg.RequestHeaders)

	return &httpVariablesAdapter{client: client}
}

// FetchVariables implements [VariablesAdapter]. It GETs
// /v1/variables?environment=..&pipeline=.. and decodes the JSON body
// whatever the status code, since error responses may carry messages.
// Failures are logged with the logger attached to ctx.
func (h *httpVariablesAdapter) FetchVariables(ctx context.Context, query models.VariablesQuery) models.FetchResult {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"environment": query.Environment,
			"pipeline":    query.Pipeline,
		}).
		Get(VariablesPath)
	if err != nil {
		log.Debug().Err(err).Msg("variables request failed")
		return models.FetchResult{Err: fmt.Errorf("%w: %w", ErrTransport, err)}
	}

	return models.FetchResult{
		Success:    resp.StatusCode() == http.StatusOK,
		Body:       decodeBody(log, resp.Body()),
		StatusCode: resp.StatusCode(),
		Err:        mapHTTPError(resp),
	}
}

// decodeBody returns nil for an empty or non-JSON body.
func decodeBody(log *logger.Logger, raw []byte) *models.VariablesResponse {
	if len(raw) == 0 {
		return nil
	}

	var body models.VariablesResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		log.Debug().Err(err).Msg("variables response is not valid JSON")
		return nil
	}

	return &body
}
