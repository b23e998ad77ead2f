package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/debug"
	"github.com/rlmdev/rlmbridge/pkg/engine"
	"github.com/rlmdev/rlmbridge/pkg/observability"
)

// mockQueryPreview is how much of the query the mock completion embeds.
const mockQueryPreview = 100

// Orchestrator runs the per-request completion pipeline: build prompt,
// select credential, invoke engine, normalize or fall back. It holds no
// per-request state and is safe for concurrent use.
type Orchestrator struct {
	engine engine.Engine
	creds  engine.Credentials
}

// NewOrchestrator creates an Orchestrator. The engine must not be nil;
// pass engine.None() for an unprovisioned deployment.
func NewOrchestrator(eng engine.Engine, creds engine.Credentials) (*Orchestrator, error) {
	if eng == nil {
		return nil, fmt.Errorf("bridge: engine must not be nil")
	}
	return &Orchestrator{engine: eng, creds: creds}, nil
}

// Complete invokes the engine with the flattened prompt and normalizes the
// outcome. An unavailable engine is absorbed into a marked mock result so
// the bridge stays operable without a provisioned engine. Any other engine
// failure is returned as an engine_error carrying the original detail.
func (o *Orchestrator) Complete(ctx context.Context, contextText, query string, cfg EngineConfig) (*api.CompletionResponse, error) {
	prompt := BuildPrompt(contextText, query)

	slog.Info("running engine completion",
		slog.String("backend", cfg.Backend),
		slog.String("model", cfg.ModelName),
		slog.Int("max_depth", cfg.MaxRecursionDepth),
		slog.Int("context_chars", len(contextText)),
		slog.Int("query_chars", len(query)),
		slog.Int("prompt_chars", len(prompt)),
	)
	debug.Raw("bridge", prompt)

	start := time.Now()
	res, err := o.engine.Complete(ctx, &engine.Request{
		Prompt:   prompt,
		Backend:  cfg.Backend,
		Model:    cfg.ModelName,
		APIKey:   o.creds.ForBackend(cfg.Backend),
		MaxDepth: cfg.MaxRecursionDepth,
	})
	duration := time.Since(start)

	if err != nil {
		if errors.Is(err, engine.ErrUnavailable) {
			observability.MockCompletionsTotal.Inc()
			slog.Warn("engine unavailable, returning mock completion",
				slog.String("backend", cfg.Backend))
			return mockResult(query), nil
		}

		observability.EngineRequestsTotal.WithLabelValues(cfg.Backend, cfg.ModelName, "error").Inc()
		observability.EngineLatency.WithLabelValues(cfg.Backend, cfg.ModelName).Observe(duration.Seconds())
		slog.Error("engine completion failed",
			slog.String("backend", cfg.Backend),
			slog.String("model", cfg.ModelName),
			slog.String("error", err.Error()),
		)

		var apiErr *api.Error
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, api.NewEngineError(err.Error())
	}

	observability.EngineRequestsTotal.WithLabelValues(cfg.Backend, cfg.ModelName, "success").Inc()
	observability.EngineLatency.WithLabelValues(cfg.Backend, cfg.ModelName).Observe(duration.Seconds())

	resp := normalizeResult(res)
	if resp.Usage != nil {
		observability.EngineTokensTotal.WithLabelValues(cfg.Backend, cfg.ModelName, "input").Add(float64(resp.Usage.PromptTokens))
		observability.EngineTokensTotal.WithLabelValues(cfg.Backend, cfg.ModelName, "output").Add(float64(resp.Usage.CompletionTokens))
	}

	slog.Info("engine completion done",
		slog.Int("response_chars", len(resp.Text)),
		slog.Duration("duration", duration),
	)
	return resp, nil
}

// EngineInfo reports how the engine was provisioned, for health checks.
func (o *Orchestrator) EngineInfo() engine.Info {
	return o.engine.Info()
}

// mockResult builds the deterministic placeholder returned when no engine
// is provisioned, embedding the head of the query for traceability. The
// preview counts characters, not bytes, so a multibyte query is never cut
// mid-rune.
func mockResult(query string) *api.CompletionResponse {
	preview := query
	if runes := []rune(preview); len(runes) > mockQueryPreview {
		preview = string(runes[:mockQueryPreview])
	}
	return &api.CompletionResponse{
		Text:     "[RLM MOCK] Would process query: " + preview + "...",
		Metadata: &api.Metadata{Mock: true},
	}
}
