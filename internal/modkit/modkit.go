package modkit

import (
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/modkit/module"
	"github.com/josuemoraisgh/EININDII06-OrificePlate/internal/platform/logger"
)

// Module aliases module.Module so builders can name it from here
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module

// BuildAll runs each builder against deps in order
// two modules claiming the same prefix is a wiring bug and panics
func BuildAll(deps Deps, builders ...Builder) []Module {
	mods := make([]Module, 0, len(builders))
	seen := make(map[string]string, len(builders))
	for _, b := range builders {
		m := b(deps)
		if other, dup := seen[m.Prefix()]; dup {
			panic("modkit: " + m.Name() + " and " + other + " both mount " + m.Prefix())
		}
		seen[m.Prefix()] = m.Name()
		logger.Get().Debug().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("module built")
		mods = append(mods, m)
	}
	return mods
}
