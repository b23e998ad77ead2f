package engine

import (
	"context"
	"errors"
)

// ErrUnavailable reports that no engine is provisioned in this environment.
// The orchestrator absorbs it into a marked mock completion; every other
// engine failure propagates to the caller.
var ErrUnavailable = errors.New("rlm engine unavailable")

// Request carries one engine invocation. APIKey may be empty; the engine
// decides whether a credential is mandatory for the selected backend.
type Request struct {
	Prompt   string
	Backend  string
	Model    string
	APIKey   string
	MaxDepth int
}

// UsageSummary reports token counts under either of the two field-naming
// conventions engines emit. Zero fields mean "not reported"; the bridge
// normalizes with a prioritized source list per target field.
type UsageSummary struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	InputTokens      int `json:"input_tokens,omitempty"`
	OutputTokens     int `json:"output_tokens,omitempty"`
}

// Result is the raw outcome of one engine invocation before normalization.
type Result struct {
	Response      string
	Usage         *UsageSummary
	Depth         int
	ExecutionTime float64 // seconds
}

// Info describes how the engine was provisioned, for health reporting.
type Info struct {
	Available bool
	Version   string
	Mode      string // "runner", "direct", or "none"
}

// Engine is the invocation contract. Complete blocks until the engine
// produces a result or fails; the request context governs its lifetime.
// Implementations must be safe for concurrent use.
type Engine interface {
	Complete(ctx context.Context, req *Request) (*Result, error)
	Info() Info
}

// None returns the null engine used when nothing is provisioned. Its
// invocations always report ErrUnavailable.
func None() Engine {
	return noneEngine{}
}

type noneEngine struct{}

func (noneEngine) Complete(context.Context, *Request) (*Result, error) {
	return nil, ErrUnavailable
}

func (noneEngine) Info() Info {
	return Info{Mode: "none"}
}
