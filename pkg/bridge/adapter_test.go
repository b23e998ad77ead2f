package bridge

import (
	"strings"
	"testing"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

func TestToContextAndQuery(t *testing.T) {
	tests := []struct {
		name        string
		messages    []api.Message
		wantContext string
		wantQuery   string
	}{
		{
			name:        "empty",
			messages:    nil,
			wantContext: "",
			wantQuery:   "",
		},
		{
			name:        "single message",
			messages:    []api.Message{{Role: "user", Content: "What's 2+2?"}},
			wantContext: "",
			wantQuery:   "What's 2+2?",
		},
		{
			name: "three messages",
			messages: []api.Message{
				{Role: "user", Content: "Hi"},
				{Role: "assistant", Content: "Hello"},
				{Role: "user", Content: "What's 2+2?"},
			},
			wantContext: "[USER]: Hi\n\n[ASSISTANT]: Hello",
			wantQuery:   "What's 2+2?",
		},
		{
			name: "missing role defaults to user",
			messages: []api.Message{
				{Content: "first"},
				{Role: "user", Content: "second"},
			},
			wantContext: "[USER]: first",
			wantQuery:   "second",
		},
		{
			name: "missing content degrades to empty string",
			messages: []api.Message{
				{Role: "system"},
				{Role: "user"},
			},
			wantContext: "[SYSTEM]: ",
			wantQuery:   "",
		},
		{
			name: "free-form role is uppercased verbatim",
			messages: []api.Message{
				{Role: "toolResult", Content: "42"},
				{Role: "user", Content: "and now?"},
			},
			wantContext: "[TOOLRESULT]: 42",
			wantQuery:   "and now?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotContext, gotQuery := ToContextAndQuery(tt.messages)
			if gotContext != tt.wantContext {
				t.Errorf("context = %q, want %q", gotContext, tt.wantContext)
			}
			if gotQuery != tt.wantQuery {
				t.Errorf("query = %q, want %q", gotQuery, tt.wantQuery)
			}
		})
	}
}

func TestToContextAndQueryBlockCount(t *testing.T) {
	messages := []api.Message{
		{Role: "user", Content: "a"},
		{Role: "assistant", Content: "b"},
		{Role: "user", Content: "c"},
		{Role: "assistant", Content: "d"},
		{Role: "user", Content: "last"},
	}

	contextText, query := ToContextAndQuery(messages)
	if query != "last" {
		t.Errorf("query = %q, want %q", query, "last")
	}

	blocks := strings.Split(contextText, "\n\n")
	if len(blocks) != len(messages)-1 {
		t.Fatalf("context blocks = %d, want %d", len(blocks), len(messages)-1)
	}
	for i, block := range blocks {
		if !strings.HasPrefix(block, "[") {
			t.Errorf("block %d = %q, missing role label", i, block)
		}
	}
}
