// Package config provides unified configuration for the RLM bridge.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (RLM_ prefix, plus credential vars)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import "time"

// Config holds all configuration for the bridge server.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Engine        EngineConfig        `yaml:"engine"`
	Credentials   CredentialsConfig   `yaml:"credentials"`
	Observability ObservabilityConfig `yaml:"observability"`
	Debug         DebugConfig         `yaml:"debug"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `yaml:"port"`          // default: 8765
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // default: 30s
	WriteTimeout time.Duration `yaml:"write_timeout"` // default: 120s
}

// EngineConfig holds RLM engine settings.
type EngineConfig struct {
	// Mode selects how the engine is provisioned: "auto", "runner",
	// "direct", or "off". In auto mode the runner is preferred when a
	// runner URL is configured, then direct when credentials exist,
	// otherwise the mock fallback serves completions.
	Mode string `yaml:"mode"` // default: "auto"

	Backend      string `yaml:"backend"`       // default: "openrouter"
	Model        string `yaml:"model"`         // default: "google/gemini-3-flash-preview"
	MaxRecursion int    `yaml:"max_recursion"` // default: 10
	Environment  string `yaml:"environment"`   // default: "local"

	RunnerURL     string        `yaml:"runner_url"`     // required when mode is "runner"
	RunnerTimeout time.Duration `yaml:"runner_timeout"` // default: 0 (no client timeout)
}

// CredentialsConfig holds per-backend API keys.
type CredentialsConfig struct {
	OpenRouter     string `yaml:"openrouter"`
	OpenRouterFile string `yaml:"openrouter_file"` // _file variant for openrouter
	OpenAI         string `yaml:"openai"`
	OpenAIFile     string `yaml:"openai_file"` // _file variant for openai
	Anthropic      string `yaml:"anthropic"`
	AnthropicFile  string `yaml:"anthropic_file"` // _file variant for anthropic
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"` // default: true
	Path    string `yaml:"path"`    // default: "/metrics"
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	Categories string `yaml:"categories"` // comma-separated, e.g. "engine,bridge"
	Level      string `yaml:"level"`      // ERROR, WARN, INFO, DEBUG, TRACE
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         8765,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
		},
		Engine: EngineConfig{
			Mode:         "auto",
			Backend:      "openrouter",
			Model:        "google/gemini-3-flash-preview",
			MaxRecursion: 10,
			Environment:  "local",
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
				Path:    "/metrics",
			},
		},
	}
}
