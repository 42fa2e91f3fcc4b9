package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// DefaultEnvFilePath is the .env file consulted when no path is configured.
const DefaultEnvFilePath = ".env"

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// build merges the collected layers. mergo.Merge only fills zero-valued
// fields, so layers appended earlier take precedence. Pointer fields are
// compared as pointers so an explicit false or 0 is kept.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withArgs(explicit *StructuredConfig) *configBuilder {
	if explicit != nil {
		b.configs = append(b.configs, explicit)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withDotEnv appends the layer decoded from the local .env file. The path is
// taken from the highest-precedence layer that sets one, falling back to
// DefaultEnvFilePath. A missing file is not an error.
func (b *configBuilder) withDotEnv() *configBuilder {
	envFilePath := DefaultEnvFilePath
	for _, cfg := range b.configs {
		if cfg.EnvFilePath != "" {
			envFilePath = cfg.EnvFilePath
			break
		}
	}

	dotEnvCfg, err := parseDotEnv(envFilePath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	if dotEnvCfg != nil {
		b.configs = append(b.configs, dotEnvCfg)
	}
	return b
}
