package yamlsettings

import "log/slog"

// Option defines a function type for applying configuration options to a Source.
type Option func(*Source)

// WithLogger sets the logger used for diagnostic tracing.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVerbose enables debug-level tracing of resolution and load steps.
// Tracing is purely observational and has no behavioral effect.
func WithVerbose(verbose bool) Option {
	return func(s *Source) {
		s.verbose = verbose
	}
}
