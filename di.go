package yamlsettings

import (
	"errors"
	"fmt"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// NewModule creates an Fx module providing a named *Source built from the
// given Config. Consumers inject it with a matching name tag:
//
//	fx.Annotate(func(s *yamlsettings.Source) { ... }, fx.ParamTags(`name:"settings"`))
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, config Config, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() *Source {
					return NewSource(config, opts...)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}
