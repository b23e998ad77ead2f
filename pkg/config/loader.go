package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, RLM_BRIDGE_CONFIG env, ./config.yaml, /etc/rlmbridge/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	cfg := Defaults()

	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	applyEnvOverrides(&cfg)

	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. RLM_BRIDGE_CONFIG environment variable
// 3. ./config.yaml in the current directory
// 4. /etc/rlmbridge/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	if configPath != "" {
		return configPath
	}

	if envPath := os.Getenv("RLM_BRIDGE_CONFIG"); envPath != "" {
		return envPath
	}

	candidates := []string{
		"config.yaml",
		"/etc/rlmbridge/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields. The RLM_*
// names predate the YAML config and stay supported; credential variables
// use the conventional provider names.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RLM_BACKEND"); v != "" {
		cfg.Engine.Backend = v
	}
	if v := os.Getenv("RLM_MODEL"); v != "" {
		cfg.Engine.Model = v
	}
	if v := os.Getenv("RLM_MAX_RECURSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxRecursion = n
		}
	}
	if v := os.Getenv("RLM_ENVIRONMENT"); v != "" {
		cfg.Engine.Environment = v
	}
	if v := os.Getenv("RLM_ENGINE_MODE"); v != "" {
		cfg.Engine.Mode = v
	}
	if v := os.Getenv("RLM_RUNNER_URL"); v != "" {
		cfg.Engine.RunnerURL = v
	}
	if v := os.Getenv("RLM_BRIDGE_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("RLM_BRIDGE_DEBUG"); v != "" {
		if isTruthy(v) {
			cfg.Debug.Level = "DEBUG"
		}
	}

	if v := os.Getenv("OPENROUTER_API_KEY"); v != "" {
		cfg.Credentials.OpenRouter = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Credentials.OpenAI = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.Credentials.Anthropic = v
	}
}

// isTruthy interprets common boolean spellings of an env value.
func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// resolveFileReferences reads _file fields and populates the corresponding
// value fields. For each field ending in _file, if the value field is empty
// and the file field is set, the file is read, whitespace is trimmed, and
// the value field is populated.
func resolveFileReferences(cfg *Config) error {
	if cfg.Credentials.OpenRouterFile != "" && cfg.Credentials.OpenRouter == "" {
		val, err := readSecretFile(cfg.Credentials.OpenRouterFile)
		if err != nil {
			return fmt.Errorf("credentials.openrouter_file: %w", err)
		}
		cfg.Credentials.OpenRouter = val
	}
	if cfg.Credentials.OpenAIFile != "" && cfg.Credentials.OpenAI == "" {
		val, err := readSecretFile(cfg.Credentials.OpenAIFile)
		if err != nil {
			return fmt.Errorf("credentials.openai_file: %w", err)
		}
		cfg.Credentials.OpenAI = val
	}
	if cfg.Credentials.AnthropicFile != "" && cfg.Credentials.Anthropic == "" {
		val, err := readSecretFile(cfg.Credentials.AnthropicFile)
		if err != nil {
			return fmt.Errorf("credentials.anthropic_file: %w", err)
		}
		cfg.Credentials.Anthropic = val
	}
	return nil
}

// readSecretFile reads a file and returns its content with surrounding whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
