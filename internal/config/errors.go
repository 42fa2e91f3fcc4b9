package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// ErrConfiguration is matched by every [*ConfigurationError] via errors.Is.
var ErrConfiguration = errors.New("invalid configuration")

// Names of validated fields, as reported in [ConfigurationError.Field].
const (
	FieldAPIKey      = "api_key"
	FieldEnvironment = "environment"
	FieldPipeline    = "pipeline"
	FieldMaxRetries  = "max_retries"
	FieldHost        = "host"
	FieldOverride    = "override"
	FieldTimeout     = "request_timeout"
)

// ConfigurationError reports a missing or invalid configuration field. It is
// returned before any network activity takes place.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %q on initialization: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("please provide %q on initialization", e.Field)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// envFieldNames maps struct field names reported by the env decoder to the
// names used in [ConfigurationError.Field].
var envFieldNames = map[string]string{
	"Override":       FieldOverride,
	"MaxRetries":     FieldMaxRetries,
	"RequestTimeout": FieldTimeout,
	"Host":           FieldHost,
}

// envConfigError turns a value the env decoder could not convert into a
// [*ConfigurationError]. Other errors are returned unchanged.
func envConfigError(err error) error {
	var parseErr env.ParseError
	if !errors.As(err, &parseErr) {
		return err
	}

	field, ok := envFieldNames[parseErr.Name]
	if !ok {
		field = strings.ToLower(parseErr.Name)
	}
	return &ConfigurationError{Field: field, Reason: parseErr.Err.Error()}
}
