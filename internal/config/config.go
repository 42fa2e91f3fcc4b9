// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw, layered configuration container. Each source
// (explicit caller arguments, process environment, local .env file) is
// decoded into its own StructuredConfig and the layers are merged by
// [configBuilder].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Doppler holds the remote service credentials, lookup keys and client
	// behaviour switches.
	Doppler Doppler `envPrefix:"DOPPLER_"`

	// EnvFilePath is the path of the local .env file consulted for default
	// values. Defaults to ".env" in the working directory.
	// Env: DOPPLER_ENV_FILE
	EnvFilePath string `env:"DOPPLER_ENV_FILE"`
}

// Doppler holds every setting understood by the client.
type Doppler struct {
	// APIKey authenticates the client against the remote service.
	// Env: DOPPLER_API_KEY
	APIKey string `env:"API_KEY"`

	// Pipeline is the named config group used as a lookup key.
	// Env: DOPPLER_PIPELINE
	Pipeline string `env:"PIPELINE"`

	// Environment is the deployment stage used as a lookup key.
	// Env: DOPPLER_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Host is the base URL of the remote service.
	// Env: DOPPLER_HOST
	Host string `env:"HOST"`

	// BackupFilePath is where the last-known-good variables are persisted.
	// Relative paths are resolved against the working directory.
	// Env: DOPPLER_BACKUP_FILEPATH
	BackupFilePath string `env:"BACKUP_FILEPATH"`

	// IgnoreVariables lists keys that are fetched but never written into
	// the process environment.
	// Env: DOPPLER_IGNORE_VARIABLES (comma separated)
	IgnoreVariables []string `env:"IGNORE_VARIABLES" envSeparator:","`

	// Override controls whether fetched variables are injected into the
	// process environment. nil means "not set" and resolves to true.
	// Env: DOPPLER_OVERRIDE
	Override *bool `env:"OVERRIDE"`

	// MaxRetries bounds the number of retries after the first attempt.
	// nil resolves to [DefaultMaxRetries].
	// Env: DOPPLER_MAX_RETRIES
	MaxRetries *int `env:"MAX_RETRIES"`

	// RequestTimeout is the per-attempt HTTP timeout.
	// Env: DOPPLER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ClientVersion overrides the client-version request header.
	// Env: DOPPLER_CLIENT_VERSION
	ClientVersion string `env:"CLIENT_VERSION"`

	// ClientSDK overrides the client-sdk request header.
	// Env: DOPPLER_CLIENT_SDK
	ClientSDK string `env:"CLIENT_SDK"`
}

// GetClientConfig resolves the full client configuration from all sources in
// the following priority order (first non-zero value wins):
//  1. explicit, the values supplied by the caller
//  2. Process environment variables
//  3. The local .env file (path taken from sources 1 and 2, default ".env")
//
// The merged result is validated and turned into a [ClientConfig].
func GetClientConfig(explicit *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withArgs(explicit).
		withEnv().
		withDotEnv().
		build()
	if err != nil {
		return nil, err
	}

	return cfg.ClientConfig()
}
