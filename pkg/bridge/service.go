package bridge

import (
	"context"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
	"github.com/rlmdev/rlmbridge/pkg/transport"
)

// Service binds the message adapter and the orchestrator behind the
// transport.Completer contract. Request validation (missing body, missing
// messages) happens at the transport boundary and never reaches here.
type Service struct {
	orch     *Orchestrator
	defaults Defaults
}

// Ensure Service implements transport.Completer at compile time.
var _ transport.Completer = (*Service)(nil)

// NewService creates a Service with the given orchestrator and
// process-wide defaults.
func NewService(orch *Orchestrator, defaults Defaults) *Service {
	return &Service{orch: orch, defaults: defaults}
}

// Complete resolves the effective configuration, collapses the messages
// into (context, query), and runs the completion pipeline.
func (s *Service) Complete(ctx context.Context, req *api.CompletionRequest) (*api.CompletionResponse, error) {
	cfg := ResolveConfig(req.RLMConfig, s.defaults)
	contextText, query := ToContextAndQuery(req.Messages)
	return s.orch.Complete(ctx, contextText, query, cfg)
}

// EngineInfo exposes engine provisioning for the health endpoint.
func (s *Service) EngineInfo() engine.Info {
	return s.orch.EngineInfo()
}
