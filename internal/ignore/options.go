package ignore

import "github.com/bethropolis/files-to-prompt/internal/logger"

// Option functions for configuration
type Option func(*Resolver)

func WithLogger(log logger.Interface) Option {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}

// WithDisabled turns the resolver into one that never reads ignore files
func WithDisabled(disabled bool) Option {
	return func(r *Resolver) {
		r.disabled = disabled
	}
}
