package bridge

import "github.com/rlmdev/rlmbridge/pkg/api"

// EngineConfig is the resolved configuration for one engine invocation.
// Built fresh per request and never mutated after construction.
type EngineConfig struct {
	Backend           string
	ModelName         string
	MaxRecursionDepth int
	Environment       string
}

// Defaults holds the process-wide default values applied when a request
// does not override a field. Constructed once at startup from environment
// configuration and passed in explicitly; never ambient global state.
type Defaults struct {
	Backend           string
	Model             string
	MaxRecursionDepth int
	Environment       string
}

// ResolveConfig merges per-request overrides (external camelCase naming)
// over the process defaults. A field absent from the override falls back
// to the default. Ranges are not validated: an out-of-range
// MaxRecursionDepth passes through unchanged and the engine enforces its
// own bound.
func ResolveConfig(overrides *api.ConfigOverrides, defaults Defaults) EngineConfig {
	cfg := EngineConfig{
		Backend:           defaults.Backend,
		ModelName:         defaults.Model,
		MaxRecursionDepth: defaults.MaxRecursionDepth,
		Environment:       defaults.Environment,
	}
	if overrides == nil {
		return cfg
	}

	if overrides.Backend != "" {
		cfg.Backend = overrides.Backend
	}
	if overrides.ModelName != "" {
		cfg.ModelName = overrides.ModelName
	}
	if overrides.MaxRecursionDepth != nil {
		cfg.MaxRecursionDepth = *overrides.MaxRecursionDepth
	}
	if overrides.Environment != "" {
		cfg.Environment = overrides.Environment
	}
	return cfg
}
