package bridge

import (
	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// usageSource reads one candidate field from an engine usage summary.
// Engines report token counts under either the prompt/completion or the
// input/output naming convention; each target field carries a prioritized
// source list and the first populated entry wins.
type usageSource struct {
	name string
	read func(*engine.UsageSummary) int
}

var promptTokenSources = []usageSource{
	{"prompt_tokens", func(u *engine.UsageSummary) int { return u.PromptTokens }},
	{"input_tokens", func(u *engine.UsageSummary) int { return u.InputTokens }},
}

var completionTokenSources = []usageSource{
	{"completion_tokens", func(u *engine.UsageSummary) int { return u.CompletionTokens }},
	{"output_tokens", func(u *engine.UsageSummary) int { return u.OutputTokens }},
}

func firstPopulated(u *engine.UsageSummary, sources []usageSource) int {
	for _, src := range sources {
		if v := src.read(u); v != 0 {
			return v
		}
	}
	return 0
}

// normalizeResult converts a raw engine result into the caller-facing
// response shape. Depth and execution time default to zero when the engine
// did not report them; usage is omitted entirely when no summary came back.
func normalizeResult(res *engine.Result) *api.CompletionResponse {
	resp := &api.CompletionResponse{
		Text: res.Response,
		Metadata: &api.Metadata{
			RecursionDepth: res.Depth,
			ExecutionTime:  res.ExecutionTime,
		},
	}
	if res.Usage != nil {
		resp.Usage = &api.Usage{
			PromptTokens:     firstPopulated(res.Usage, promptTokenSources),
			CompletionTokens: firstPopulated(res.Usage, completionTokenSources),
		}
	}
	return resp
}
