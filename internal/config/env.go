// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from process environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
//
// A value that cannot be converted to the target type is reported as a
// [*ConfigurationError]; any other env.Parse failure is wrapped.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", envConfigError(err))
	}

	return nil
}

// parseEnvMap populates cfg from vars instead of the process environment,
// using the same struct tags as [parseEnv].
func parseEnvMap(cfg any, vars map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting env configs from map: %w", envConfigError(err))
	}

	return nil
}

type hostEnv struct {
	Host string `env:"DOPPLER_HOST" envDefault:"https://deploy.doppler.com"`
}

// lookupHost returns DOPPLER_HOST from the process environment, or the
// public service URL when it is unset.
func lookupHost() (string, error) {
	h, err := env.ParseAs[hostEnv]()
	if err != nil {
		return "", fmt.Errorf("error getting host from env: %w", err)
	}

	return h.Host, nil
}
