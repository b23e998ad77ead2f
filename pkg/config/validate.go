package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	if c.Engine.MaxRecursion <= 0 {
		errs = append(errs, fmt.Errorf("engine.max_recursion must be > 0, got %d", c.Engine.MaxRecursion))
	}

	switch c.Engine.Mode {
	case "auto", "runner", "direct", "off":
		// valid
	default:
		errs = append(errs, fmt.Errorf("engine.mode must be \"auto\", \"runner\", \"direct\", or \"off\", got %q", c.Engine.Mode))
	}

	if c.Engine.Mode == "runner" && c.Engine.RunnerURL == "" {
		errs = append(errs, fmt.Errorf("engine.runner_url is required when engine.mode is \"runner\""))
	}

	if c.Engine.Backend == "" {
		errs = append(errs, fmt.Errorf("engine.backend is required"))
	}
	if c.Engine.Model == "" {
		errs = append(errs, fmt.Errorf("engine.model is required"))
	}

	return errors.Join(errs...)
}
