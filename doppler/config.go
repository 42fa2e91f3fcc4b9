package doppler

import (
	"github.com/MKhiriev/go-doppler-env/internal/config"
)

// Config holds the settings passed to [New]. Zero fields are filled from
// the process environment and then from the local .env file.
type Config struct {
	APIKey      string
	Environment string
	Pipeline    string
	// Host defaults to DOPPLER_HOST or https://deploy.doppler.com.
	Host string
	// BackupFilePath enables the local backup. Relative paths are resolved
	// against the working directory.
	BackupFilePath string
	// IgnoreVariables are fetched but never injected into the environment.
	IgnoreVariables []string
	// Override controls environment injection. nil means true.
	Override *bool
	// ClientVersion and ClientSDK override the matching request headers.
	ClientVersion string
	ClientSDK     string
	// EnvFilePath is the .env file read for defaults. Defaults to ".env".
	EnvFilePath string
}

// Bool returns a pointer to v, for use with Config.Override.
func Bool(v bool) *bool {
	return &v
}

func (c Config) structured(o *options) *config.StructuredConfig {
	return &config.StructuredConfig{
		Doppler: config.Doppler{
			APIKey:          c.APIKey,
			Pipeline:        c.Pipeline,
			Environment:     c.Environment,
			Host:            c.Host,
			BackupFilePath:  c.BackupFilePath,
			IgnoreVariables: c.IgnoreVariables,
			Override:        c.Override,
			MaxRetries:      o.maxRetries,
			RequestTimeout:  o.requestTimeout,
			ClientVersion:   c.ClientVersion,
			ClientSDK:       c.ClientSDK,
		},
		EnvFilePath: c.EnvFilePath,
	}
}
