package service

import (
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-doppler-env/models"
)

type envOverrider struct {
	ignore map[string]struct{}
	setenv func(key, value string) error
}

// NewEnvOverrider returns an [EnvOverrider] that sets every variable whose
// name is not in ignore, replacing any existing value.
func NewEnvOverrider(ignore map[string]struct{}) EnvOverrider {
	return &envOverrider{ignore: ignore, setenv: os.Setenv}
}

func (o *envOverrider) Override(vars models.Variables) error {
	var errs []error
	for name, value := range vars {
		if _, skip := o.ignore[name]; skip {
			continue
		}
		if err := o.setenv(name, value); err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
