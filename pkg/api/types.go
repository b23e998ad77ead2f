package api

// Message is one role-tagged conversational turn supplied by the caller.
// Both fields are free-form; the bridge never validates them. A missing
// role is treated as "user" by the message adapter, a missing content as
// the empty string.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ConfigOverrides carries per-request engine configuration overrides using
// the external camelCase naming convention. Absent fields (empty string,
// nil pointer) fall back to the process-wide defaults.
//
// MaxRecursionDepth is a pointer so that an explicit zero can be told apart
// from "not supplied". No range validation happens here or downstream: an
// out-of-range depth is passed through and the engine enforces its own
// bound.
type ConfigOverrides struct {
	Backend           string `json:"backend,omitempty"`
	ModelName         string `json:"modelName,omitempty"`
	MaxRecursionDepth *int   `json:"maxRecursionDepth,omitempty"`
	Environment       string `json:"environment,omitempty"`
}

// CompletionRequest is the body of POST /completion.
//
// Model is accepted for compatibility with chat-completions shaped clients
// but is not consulted; the effective model comes from RLMConfig.ModelName
// or the process default.
type CompletionRequest struct {
	Messages  []Message        `json:"messages"`
	Model     string           `json:"model,omitempty"`
	RLMConfig *ConfigOverrides `json:"rlmConfig,omitempty"`
}

// Usage reports token counts for one completion.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
}

// Metadata carries execution details for one completion. Mock is set when
// the engine was unavailable and the text is a deterministic placeholder.
type Metadata struct {
	RecursionDepth int     `json:"recursionDepth"`
	ExecutionTime  float64 `json:"executionTime"`
	Mock           bool    `json:"mock,omitempty"`
}

// CompletionResponse is the normalized output returned to the caller.
// It is constructed once per request and discarded after serialization.
type CompletionResponse struct {
	Text     string    `json:"text"`
	Usage    *Usage    `json:"usage,omitempty"`
	Metadata *Metadata `json:"metadata,omitempty"`
}
