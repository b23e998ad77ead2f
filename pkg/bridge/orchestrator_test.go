package bridge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// fakeEngine records the last request and returns a canned outcome.
type fakeEngine struct {
	lastReq *engine.Request
	result  *engine.Result
	err     error
}

func (f *fakeEngine) Complete(_ context.Context, req *engine.Request) (*engine.Result, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeEngine) Info() engine.Info {
	return engine.Info{Available: true, Version: "test", Mode: "fake"}
}

var orchDefaults = EngineConfig{
	Backend:           "openrouter",
	ModelName:         "google/gemini-3-flash-preview",
	MaxRecursionDepth: 10,
	Environment:       "local",
}

func TestOrchestratorSuccess(t *testing.T) {
	eng := &fakeEngine{result: &engine.Result{
		Response:      "four",
		Usage:         &engine.UsageSummary{InputTokens: 20, OutputTokens: 2},
		Depth:         1,
		ExecutionTime: 0.8,
	}}
	orch, err := NewOrchestrator(eng, engine.Credentials{OpenRouter: "or-key"})
	if err != nil {
		t.Fatalf("NewOrchestrator: %v", err)
	}

	resp, err := orch.Complete(context.Background(), "[USER]: Hi", "What's 2+2?", orchDefaults)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if resp.Text != "four" {
		t.Errorf("Text = %q", resp.Text)
	}
	if resp.Usage.PromptTokens != 20 || resp.Usage.CompletionTokens != 2 {
		t.Errorf("Usage = %+v", resp.Usage)
	}
	if resp.Metadata.RecursionDepth != 1 {
		t.Errorf("RecursionDepth = %d", resp.Metadata.RecursionDepth)
	}
	if resp.Metadata.Mock {
		t.Error("Mock set on real completion")
	}

	// The engine received the two-section prompt and the selected credential.
	if !strings.HasPrefix(eng.lastReq.Prompt, "Previous conversation context:\n") {
		t.Errorf("Prompt = %q, missing context section", eng.lastReq.Prompt)
	}
	if eng.lastReq.APIKey != "or-key" {
		t.Errorf("APIKey = %q, want backend credential", eng.lastReq.APIKey)
	}
	if eng.lastReq.MaxDepth != 10 {
		t.Errorf("MaxDepth = %d, want 10", eng.lastReq.MaxDepth)
	}
}

func TestOrchestratorNoContextPromptIsQueryVerbatim(t *testing.T) {
	eng := &fakeEngine{result: &engine.Result{Response: "ok"}}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	if _, err := orch.Complete(context.Background(), "", "bare query", orchDefaults); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if eng.lastReq.Prompt != "bare query" {
		t.Errorf("Prompt = %q, want query verbatim", eng.lastReq.Prompt)
	}
}

func TestOrchestratorUnknownBackendGetsNoCredential(t *testing.T) {
	eng := &fakeEngine{result: &engine.Result{Response: "ok"}}
	orch, _ := NewOrchestrator(eng, engine.Credentials{OpenAI: "oa-key"})

	cfg := orchDefaults
	cfg.Backend = "mystery"
	if _, err := orch.Complete(context.Background(), "", "q", cfg); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if eng.lastReq.APIKey != "" {
		t.Errorf("APIKey = %q, want empty for unknown backend", eng.lastReq.APIKey)
	}
}

func TestOrchestratorUnavailableEngineReturnsMock(t *testing.T) {
	eng := &fakeEngine{err: engine.ErrUnavailable}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	query := strings.Repeat("x", 150)
	resp, err := orch.Complete(context.Background(), "", query, orchDefaults)
	if err != nil {
		t.Fatalf("Complete: %v, want absorbed fallback", err)
	}

	if resp.Metadata == nil || !resp.Metadata.Mock {
		t.Fatalf("Metadata = %+v, want mock flag", resp.Metadata)
	}
	if !strings.Contains(resp.Text, query[:100]) {
		t.Errorf("Text = %q, want first 100 chars of query embedded", resp.Text)
	}
	if strings.Contains(resp.Text, query[:101]) {
		t.Errorf("Text embeds more than 100 query chars")
	}
	if !strings.HasPrefix(resp.Text, "[RLM MOCK] Would process query: ") {
		t.Errorf("Text = %q, want mock marker prefix", resp.Text)
	}
	if resp.Usage != nil {
		t.Errorf("Usage = %+v, want nil on mock", resp.Usage)
	}
}

func TestOrchestratorMockTruncatesOnRuneBoundary(t *testing.T) {
	eng := &fakeEngine{err: engine.ErrUnavailable}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	query := strings.Repeat("€", 150)
	resp, err := orch.Complete(context.Background(), "", query, orchDefaults)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if !utf8.ValidString(resp.Text) {
		t.Fatalf("Text = %q, want valid UTF-8", resp.Text)
	}
	want := "[RLM MOCK] Would process query: " + strings.Repeat("€", 100) + "..."
	if resp.Text != want {
		t.Errorf("Text = %q, want first 100 characters embedded", resp.Text)
	}
}

func TestOrchestratorShortQueryMockEmbedsWhole(t *testing.T) {
	eng := &fakeEngine{err: engine.ErrUnavailable}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	resp, err := orch.Complete(context.Background(), "", "short", orchDefaults)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Text != "[RLM MOCK] Would process query: short..." {
		t.Errorf("Text = %q", resp.Text)
	}
}

func TestOrchestratorOtherEngineFailurePropagates(t *testing.T) {
	eng := &fakeEngine{err: errors.New("provider exploded")}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	resp, err := orch.Complete(context.Background(), "", "q", orchDefaults)
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if apiErr.Type != api.ErrorTypeEngine {
		t.Errorf("Type = %q, want engine_error", apiErr.Type)
	}
	if !strings.Contains(apiErr.Message, "provider exploded") {
		t.Errorf("Message = %q, want original detail", apiErr.Message)
	}
}

func TestOrchestratorPreservesTypedEngineError(t *testing.T) {
	orig := api.NewEngineError("bad credential")
	eng := &fakeEngine{err: orig}
	orch, _ := NewOrchestrator(eng, engine.Credentials{})

	_, err := orch.Complete(context.Background(), "", "q", orchDefaults)

	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *api.Error", err)
	}
	if apiErr != orig {
		t.Errorf("error rewrapped, want passthrough")
	}
}

func TestNewOrchestratorRejectsNilEngine(t *testing.T) {
	if _, err := NewOrchestrator(nil, engine.Credentials{}); err == nil {
		t.Error("expected error for nil engine")
	}
}
