package substitute

import (
	"fmt"

	"evcouplings/internal/config"
	"evcouplings/pkg/logging"
)

// step transforms a configuration according to the overrides. A step never
// modifies its input; it returns the input itself when it has nothing to do.
type step struct {
	name  string
	apply func(config.Configuration, Overrides) (config.Configuration, error)
}

// steps run in this order. Threshold expansion is last so that its mutual
// exclusion check is independent of everything before it.
var steps = []step{
	{"parameter map", applyParameterMap},
	{"existing alignment", applyExistingAlignment},
	{"region", applyRegion},
	{"stages", applyStages},
	{"database", applyDatabase},
	{"thresholds", applyThresholds},
}

// Loader reads a base configuration from a source.
type Loader func(source string) (config.Configuration, error)

// Engine substitutes overrides into base configurations read by its Loader.
// An Engine holds no mutable state and may be used concurrently.
type Engine struct {
	load Loader
}

// NewEngine creates an engine reading sources with config.Load.
func NewEngine() *Engine {
	return &Engine{load: config.Load}
}

// NewEngineWithLoader creates an engine with a custom source loader.
func NewEngineWithLoader(load Loader) *Engine {
	return &Engine{load: load}
}

// Run loads the base configuration from source and applies the overrides to it.
func (e *Engine) Run(source string, o Overrides) (config.Configuration, error) {
	base, err := e.load(source)
	if err != nil {
		return nil, err
	}
	return Apply(base, o)
}

// Apply returns base with the overrides substituted into it. base is not modified.
// The first failure aborts the substitution and no configuration is returned.
func Apply(base config.Configuration, o Overrides) (config.Configuration, error) {
	if err := config.ValidateSections(base); err != nil {
		return nil, config.FormatValidationError("base configuration", "", err)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	for _, p := range o.Unknown() {
		logging.Debug("Substitution", "Ignoring unknown parameter %s", p)
	}

	cfg := base
	for _, s := range steps {
		next, err := s.apply(cfg, o)
		if err != nil {
			logging.Debug("Substitution", "Step %s failed: %v", s.name, err)
			return nil, fmt.Errorf("applying %s overrides: %w", s.name, err)
		}
		cfg = next
	}

	return cfg, nil
}
