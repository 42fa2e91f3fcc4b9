// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package doppler

import (
	"context"

	"github.com/MKhiriev/go-doppler-env/internal/adapter"
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/service"
	"github.com/MKhiriev/go-doppler-env/internal/store"
	"github.com/MKhiriev/go-doppler-env/internal/workers"
	"github.com/MKhiriev/go-doppler-env/models"
)

// Client holds the variables resolved at construction. It never refetches.
type Client struct {
	vars    models.Variables
	workers *workers.Workers
}

// New resolves the configuration and fetches the variables. It returns once
// the fetch, including retries and backup fallback, has finished.
//
// A missing API key, environment or pipeline fails with [ErrConfiguration]
// before any request is made.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	o := newOptions(opts)

	clientCfg, err := config.GetClientConfig(cfg.structured(o))
	if err != nil {
		return nil, err
	}

	return newClient(ctx, clientCfg, o)
}

func newClient(ctx context.Context, cfg *config.ClientConfig, o *options) (*Client, error) {
	services := service.NewServices(
		cfg,
		adapter.NewHTTPVariablesAdapter(cfg),
		store.NewFileBackupStorage(),
		o.delay,
		o.logger,
	)

	vars, err := services.VariablesService.Fetch(o.logger.WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return &Client{vars: vars, workers: services.Workers}, nil
}

// Get returns the value of name and whether it exists.
func (c *Client) Get(name string) (string, bool) {
	return c.vars.Get(name)
}

// GetAll returns every variable. The map is shared and must not be modified.
func (c *Client) GetAll() models.Variables {
	return c.vars
}

// Wait blocks until the background backup write, if any, has finished.
func (c *Client) Wait() {
	c.workers.Wait()
}
