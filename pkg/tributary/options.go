package tributary

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

// Option configures a Tributary instance.
type Option func(*options)

// WithLogger sets the logger used for per-record skip diagnostics.
// Default: a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func defaultOptions() options {
	return options{
		logger: zerolog.Nop(),
	}
}
