// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the required fields of the merged configuration in a fixed
// order: api_key, environment, pipeline. The first missing one is reported
// as a [*ConfigurationError].
func (cfg *StructuredConfig) validate() error {
	if cfg.Doppler.APIKey == "" {
		return &ConfigurationError{Field: FieldAPIKey}
	}
	if cfg.Doppler.Environment == "" {
		return &ConfigurationError{Field: FieldEnvironment}
	}
	if cfg.Doppler.Pipeline == "" {
		return &ConfigurationError{Field: FieldPipeline}
	}
	if cfg.Doppler.MaxRetries != nil && *cfg.Doppler.MaxRetries < 0 {
		return &ConfigurationError{Field: FieldMaxRetries, Reason: "must not be negative"}
	}

	return nil
}
