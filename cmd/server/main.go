// Command server runs the RLM bridge.
//
// Configuration is layered: built-in defaults, an optional YAML file
// (-config flag, RLM_BRIDGE_CONFIG env, ./config.yaml, or
// /etc/rlmbridge/config.yaml), then environment overrides:
//
//	RLM_BACKEND        - default engine backend (default: "openrouter")
//	RLM_MODEL          - default model name
//	RLM_MAX_RECURSION  - default recursion depth limit (default: 10)
//	RLM_ENGINE_MODE    - engine provisioning: auto, runner, direct, off
//	RLM_RUNNER_URL     - external runner URL (enables runner mode)
//	RLM_BRIDGE_PORT    - listen port (default: 8765)
//	RLM_BRIDGE_DEBUG   - truthy value enables debug logging
//
// API keys come from OPENROUTER_API_KEY, OPENAI_API_KEY, and
// ANTHROPIC_API_KEY, or from the credentials section of the config file.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/rlmdev/rlmbridge/pkg/bridge"
	"github.com/rlmdev/rlmbridge/pkg/config"
	"github.com/rlmdev/rlmbridge/pkg/debug"
	"github.com/rlmdev/rlmbridge/pkg/engine"
	"github.com/rlmdev/rlmbridge/pkg/engine/direct"
	"github.com/rlmdev/rlmbridge/pkg/engine/runner"
	transporthttp "github.com/rlmdev/rlmbridge/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	debug.Init(cfg.Debug.Categories, cfg.Debug.Level)

	creds := engine.Credentials{
		OpenRouter: cfg.Credentials.OpenRouter,
		OpenAI:     cfg.Credentials.OpenAI,
		Anthropic:  cfg.Credentials.Anthropic,
	}

	eng, err := buildEngine(cfg, creds)
	if err != nil {
		return fmt.Errorf("provisioning engine: %w", err)
	}
	info := eng.Info()
	slog.Info("engine provisioned",
		"mode", info.Mode,
		"available", info.Available,
		"version", info.Version,
	)
	if !info.Available {
		slog.Warn("no RLM engine available, completions will use the mock fallback")
	}

	orch, err := bridge.NewOrchestrator(eng, creds)
	if err != nil {
		return fmt.Errorf("creating orchestrator: %w", err)
	}

	svc := bridge.NewService(orch, bridge.Defaults{
		Backend:           cfg.Engine.Backend,
		Model:             cfg.Engine.Model,
		MaxRecursionDepth: cfg.Engine.MaxRecursion,
		Environment:       cfg.Engine.Environment,
	})

	srv := transporthttp.NewServer(svc, svc.EngineInfo,
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		transporthttp.WithMetrics(cfg.Observability.Metrics.Enabled, cfg.Observability.Metrics.Path),
		transporthttp.WithHealthDefaults(cfg.Engine.Backend, cfg.Engine.Model),
		transporthttp.WithShutdownTimeout(10*time.Second),
	)

	slog.Info("bridge starting",
		"port", cfg.Server.Port,
		"backend", cfg.Engine.Backend,
		"model", cfg.Engine.Model,
		"environment", cfg.Engine.Environment,
	)
	return srv.ListenAndServe()
}

// buildEngine provisions the RLM engine according to the configured mode.
// In auto mode the runner is preferred when a URL is configured, then the
// in-process direct engine when credentials exist; otherwise the null
// engine makes every completion fall back to the mock response.
func buildEngine(cfg *config.Config, creds engine.Credentials) (engine.Engine, error) {
	switch cfg.Engine.Mode {
	case "runner":
		return runner.New(runner.Config{
			BaseURL: cfg.Engine.RunnerURL,
			Timeout: cfg.Engine.RunnerTimeout,
		})
	case "direct":
		return direct.New(), nil
	case "off":
		return engine.None(), nil
	default: // auto
		if cfg.Engine.RunnerURL != "" {
			return runner.New(runner.Config{
				BaseURL: cfg.Engine.RunnerURL,
				Timeout: cfg.Engine.RunnerTimeout,
			})
		}
		if !creds.Empty() {
			return direct.New(), nil
		}
		return engine.None(), nil
	}
}
