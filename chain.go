package yamlsettings

import "fmt"

// FieldSource is the extension point for settings sources that can be
// composed into a Chain. Implementations resolve a single top-level field,
// returning found=false to defer to lower-precedence sources.
type FieldSource interface {
	Name() string
	FieldValue(field string) (value any, found bool, err error)
}

// Chain consults sources in the given order, first match wins. The relative
// precedence of sources (initialization arguments, environment, files) is a
// policy decision owned by the caller: list sources in descending precedence.
type Chain struct {
	sources []FieldSource
}

// NewChain creates a Chain over the given sources, highest precedence first.
func NewChain(sources ...FieldSource) *Chain {
	return &Chain{sources: sources}
}

// Name identifies the chain when it is itself used as a FieldSource.
func (c *Chain) Name() string {
	return "chain"
}

// FieldValue returns the field's value from the first source that has it.
func (c *Chain) FieldValue(field string) (any, bool, error) {
	for _, source := range c.sources {
		value, found, err := source.FieldValue(field)
		if err != nil {
			return nil, false, fmt.Errorf("source %q: %w", source.Name(), err)
		}

		if found {
			return value, true, nil
		}
	}

	return nil, false, nil
}
