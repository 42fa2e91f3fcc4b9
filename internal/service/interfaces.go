package service

import (
	"context"

	"github.com/MKhiriev/go-doppler-env/models"
)

// VariablesService resolves the variable set a client starts with.
type VariablesService interface {
	// Fetch queries the remote service with bounded retries and falls back
	// to the local backup when the service cannot be reached. On success it
	// schedules a backup write and injects the variables into the process
	// environment when configured to.
	Fetch(ctx context.Context) (models.Variables, error)
}

// EnvOverrider copies variables into the process environment.
type EnvOverrider interface {
	Override(vars models.Variables) error
}
