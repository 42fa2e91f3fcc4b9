package doppler

import (
	"github.com/MKhiriev/go-doppler-env/internal/config"
	"github.com/MKhiriev/go-doppler-env/internal/service"
)

// Errors returned by [New] and [Shared]. Match them with errors.Is.
var (
	// ErrConfiguration reports a missing or invalid setting. No request has
	// been made when it is returned.
	ErrConfiguration = config.ErrConfiguration
	// ErrServerReported reports an error described by the service itself.
	ErrServerReported = service.ErrServerReported
	// ErrRetriesExhausted reports that the service could not be reached and
	// no backup was available.
	ErrRetriesExhausted = service.ErrRetriesExhausted
)

type (
	ConfigurationError = config.ConfigurationError
	ServerError        = service.ServerError
	ExhaustedError     = service.ExhaustedError
)
