// Package direct implements engine.Engine by calling a model provider SDK
// in-process. It performs a single root completion without recursive
// decomposition, which keeps the bridge usable when no runner is deployed.
package direct

import (
	"context"
	"time"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/debug"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// maxCompletionTokens bounds a single provider completion.
const maxCompletionTokens = 4096

// Engine dispatches completions to the provider matching the requested
// backend. Clients are constructed per request because the API key can
// differ between requests.
type Engine struct{}

var _ engine.Engine = (*Engine)(nil)

// New creates a direct engine.
func New() *Engine {
	return &Engine{}
}

// Complete runs a single completion against the requested backend.
func (e *Engine) Complete(ctx context.Context, req *engine.Request) (*engine.Result, error) {
	if req.APIKey == "" {
		return nil, api.NewEngineError("no API key configured for backend " + req.Backend)
	}

	debug.Log("engine", "direct completion", "backend", req.Backend, "model", req.Model)

	start := time.Now()

	var (
		text  string
		usage *engine.UsageSummary
		err   error
	)
	switch req.Backend {
	case "anthropic":
		text, usage, err = completeAnthropic(ctx, req)
	default:
		// openrouter, openai, and anything speaking the Chat Completions
		// protocol.
		text, usage, err = completeOpenAI(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	return &engine.Result{
		Response:      text,
		Usage:         usage,
		Depth:         0,
		ExecutionTime: time.Since(start).Seconds(),
	}, nil
}

// Info reports the engine as a builtin single-shot implementation.
func (e *Engine) Info() engine.Info {
	return engine.Info{
		Available: true,
		Version:   "builtin",
		Mode:      "direct",
	}
}
