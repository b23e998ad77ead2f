package transport

import (
	"context"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

// Completer handles the core completion operation. The implementation
// receives an already-validated request and returns the normalized
// response; request validation (missing body, missing messages) stays in
// the HTTP adapter and never reaches a Completer.
type Completer interface {
	Complete(ctx context.Context, req *api.CompletionRequest) (*api.CompletionResponse, error)
}

// CompleterFunc is an adapter that allows using an ordinary function as a
// Completer.
type CompleterFunc func(ctx context.Context, req *api.CompletionRequest) (*api.CompletionResponse, error)

// Complete calls f(ctx, req).
func (f CompleterFunc) Complete(ctx context.Context, req *api.CompletionRequest) (*api.CompletionResponse, error) {
	return f(ctx, req)
}
