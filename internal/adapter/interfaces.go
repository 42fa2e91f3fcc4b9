// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction for talking to
// the remote configuration service.
//
// The primary abstraction is [VariablesAdapter], which decouples the fetch
// state machine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPVariablesAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError and attached to [models.FetchResult.Err] for diagnostics.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doppler-env/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/variables_adapter_mock.go -package=mock

// VariablesAdapter performs a single lookup of the variables of one
// environment/pipeline pair.
type VariablesAdapter interface {
	// FetchVariables issues one request and never returns an error: every
	// failure, including network errors and timeouts, is folded into the
	// returned [models.FetchResult] with Success == false. A result with
	// StatusCode == 0 means no HTTP response was received.
	FetchVariables(ctx context.Context, query models.VariablesQuery) models.FetchResult
}
