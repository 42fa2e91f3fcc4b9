package doppler

import (
	"time"

	"github.com/MKhiriev/go-doppler-env/internal/logger"
	"github.com/MKhiriev/go-doppler-env/internal/retry"
	"github.com/rs/zerolog"
)

const defaultLoggerRole = "doppler-client"

type options struct {
	logger         *logger.Logger
	delay          retry.DelayFunc
	maxRetries     *int
	requestTimeout time.Duration
}

type Option func(*options)

// WithLogger sets the logger used for fallback notices and background
// backup failures. The default logs JSON to stderr at info level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.FromZerolog(l)
	}
}

// WithRetryDelay sets the wait before each retry. retry is 1-based.
// By default retries are immediate.
func WithRetryDelay(delay func(retry int) time.Duration) Option {
	return func(o *options) {
		o.delay = delay
	}
}

// WithExponentialBackoff waits initial before the first retry and doubles
// the wait on every retry up to maxDelay.
func WithExponentialBackoff(initial, maxDelay time.Duration) Option {
	return func(o *options) {
		o.delay = retry.Exponential(initial, maxDelay)
	}
}

// WithMaxRetries sets the number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(o *options) {
		o.maxRetries = &n
	}
}

// WithRequestTimeout bounds each attempt. The default is 1500ms.
func WithRequestTimeout(d time.Duration) Option {
	return func(o *options) {
		o.requestTimeout = d
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.FromZerolog(logger.NewLogger(defaultLoggerRole).Level(zerolog.InfoLevel))
	}
	return o
}
