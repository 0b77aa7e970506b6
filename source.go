package yamlsettings

import (
	"log/slog"

	"github.com/0xalexb/yamlsettings/merge"
)

// loadState tracks whether the merged configuration has been computed.
type loadState int

const (
	stateUnloaded loadState = iota
	stateLoaded
)

// Source loads one or more YAML/JSON documents and serves their deep-merged
// content as a settings source.
//
// A Source caches the merged configuration after the first Load unless
// Reload is enabled, in which case every access recomputes from disk.
// A Source is not safe for concurrent use; give each concurrent settings
// instantiation its own instance.
type Source struct {
	config  Config
	logger  *slog.Logger
	verbose bool

	state  loadState
	loaded map[string]any
}

// NewSource creates a Source from a resolved Config. Use Resolve to produce
// the Config from caller declarations.
func NewSource(config Config, opts ...Option) *Source {
	source := &Source{
		config: config,
		logger: slog.Default(),
	}

	for _, apply := range opts {
		apply(source)
	}

	return source
}

// Name identifies this source within a Chain.
func (s *Source) Name() string {
	return "yaml"
}

// Load returns the merged configuration. The first call reads and merges the
// declared files; subsequent calls return the cached result unless Reload is
// enabled. The returned mapping is a deep copy, callers may mutate it freely.
func (s *Source) Load() (map[string]any, error) {
	switch {
	case s.config.Reload:
		s.trace("reloading configuration files")

		loaded, err := s.load()
		if err != nil {
			return nil, err
		}

		s.loaded = loaded
		s.state = stateLoaded

	case s.state == stateUnloaded:
		s.trace("loading configuration files")

		loaded, err := s.load()
		if err != nil {
			return nil, err
		}

		s.loaded = loaded
		s.state = stateLoaded
	}

	return merge.Clone(s.loaded), nil
}

// FieldValue returns the value for a top-level settings field, or found=false
// when the merged configuration has no such key, deferring to other sources.
func (s *Source) FieldValue(field string) (value any, found bool, err error) {
	loaded, err := s.Load()
	if err != nil {
		return nil, false, err
	}

	value, found = loaded[field]

	return value, found, nil
}

// trace emits a debug-level diagnostic when verbose tracing is enabled.
func (s *Source) trace(msg string, args ...any) {
	if !s.verbose {
		return
	}

	s.logger.Debug(msg, args...)
}
