// Package logging builds slog loggers for diagnostic tracing of settings
// resolution and loading. Loggers are constructed explicitly and injected;
// nothing in this module configures or reads process-wide logger state.
package logging
