package yamlsettings

import (
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Validator defines an interface for validating settings structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in settings structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that loads the merged configuration from a
// Source, decodes it into the target, sets defaults, and validates.
func Provider[T any](target *T) func(*Source) (*T, error) {
	return func(source *Source) (*T, error) {
		loaded, err := source.Load()
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}

		data, err := yaml.Marshal(loaded)
		if err != nil {
			return nil, fmt.Errorf("encoding settings: %w", err)
		}

		err = yaml.Unmarshal(data, target)
		if err != nil {
			return nil, fmt.Errorf("decoding settings: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Debug("defaults applied")
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating settings: %w", err)
			}
		}

		return target, nil
	}
}
