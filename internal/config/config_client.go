package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-doppler-env/internal/utils"
	"github.com/MKhiriev/go-doppler-env/internal/version"
)

const (
	// DefaultHost is the public service URL used when neither the caller
	// nor DOPPLER_HOST supplies one.
	DefaultHost = "https://deploy.doppler.com"
	// DefaultMaxRetries is the retry budget after the first attempt.
	DefaultMaxRetries = 10
	// DefaultRequestTimeout bounds a single fetch attempt.
	DefaultRequestTimeout = 1500 * time.Millisecond
	// DefaultClientSDK is sent in the client-sdk header.
	DefaultClientSDK = "go"
)

// Request header names sent with every fetch.
const (
	HeaderAPIKey        = "api-key"
	HeaderClientVersion = "client-version"
	HeaderClientSDK     = "client-sdk"
)

// ClientConfig is the validated, immutable view of the configuration used
// by the client after construction.
type ClientConfig struct {
	// APIKey authenticates every request.
	APIKey string
	// Environment and Pipeline are the lookup keys of the variable set.
	Environment string
	Pipeline    string
	// Host is the normalised base URL of the remote service.
	Host string
	// IgnoreVariables holds keys never injected into the process env.
	IgnoreVariables map[string]struct{}
	// MaxRetries is the retry budget after the first attempt.
	MaxRetries int
	// Override enables process environment injection.
	Override bool
	// BackupFilePath is the absolute backup path, or empty when disabled.
	BackupFilePath string
	// RequestTimeout bounds each attempt.
	RequestTimeout time.Duration
	// RequestHeaders carries api-key, client-version and client-sdk.
	RequestHeaders map[string]string
}

// ClientConfig validates cfg and derives a [ClientConfig] from it.
//
// Required fields are checked first, before anything touches the network or
// the filesystem. Missing optional fields get their defaults: the host comes
// from DOPPLER_HOST or [DefaultHost], the client version from the library
// version, and override defaults to true.
func (cfg *StructuredConfig) ClientConfig() (*ClientConfig, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	d := cfg.Doppler

	host := d.Host
	if host == "" {
		envHost, err := lookupHost()
		if err != nil {
			return nil, err
		}
		host = envHost
	}
	host, err := utils.NormalizeBaseURL(host)
	if err != nil {
		return nil, &ConfigurationError{Field: FieldHost, Reason: err.Error()}
	}

	clientCfg := &ClientConfig{
		APIKey:          d.APIKey,
		Environment:     d.Environment,
		Pipeline:        d.Pipeline,
		Host:            host,
		IgnoreVariables: make(map[string]struct{}, len(d.IgnoreVariables)),
		MaxRetries:      DefaultMaxRetries,
		Override:        true,
		RequestTimeout:  DefaultRequestTimeout,
		RequestHeaders: map[string]string{
			HeaderAPIKey:        d.APIKey,
			HeaderClientVersion: orDefault(d.ClientVersion, version.Version),
			HeaderClientSDK:     orDefault(d.ClientSDK, DefaultClientSDK),
		},
	}

	for _, name := range d.IgnoreVariables {
		if name = strings.TrimSpace(name); name != "" {
			clientCfg.IgnoreVariables[name] = struct{}{}
		}
	}
	if d.MaxRetries != nil {
		clientCfg.MaxRetries = *d.MaxRetries
	}
	if d.Override != nil {
		clientCfg.Override = *d.Override
	}
	if d.RequestTimeout > 0 {
		clientCfg.RequestTimeout = d.RequestTimeout
	}
	if d.BackupFilePath != "" {
		abs, err := filepath.Abs(d.BackupFilePath)
		if err != nil {
			return nil, fmt.Errorf("error resolving backup file path: %w", err)
		}
		clientCfg.BackupFilePath = abs
	}

	return clientCfg, nil
}

// Ignored reports whether name is excluded from environment injection.
func (c *ClientConfig) Ignored(name string) bool {
	_, ok := c.IgnoreVariables[name]
	return ok
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
