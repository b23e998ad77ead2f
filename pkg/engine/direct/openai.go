package direct

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// openRouterBaseURL is the OpenAI-compatible endpoint of OpenRouter.
const openRouterBaseURL = "https://openrouter.ai/api/v1"

// completeOpenAI runs a completion against an OpenAI-compatible Chat
// Completions backend. The "openrouter" backend reuses the OpenAI client
// with a different base URL.
func completeOpenAI(ctx context.Context, req *engine.Request) (string, *engine.UsageSummary, error) {
	opts := []option.RequestOption{option.WithAPIKey(req.APIKey)}
	if req.Backend == "openrouter" {
		opts = append(opts, option.WithBaseURL(openRouterBaseURL))
	}
	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxCompletionTokens: openai.Int(maxCompletionTokens),
	})
	if err != nil {
		return "", nil, api.NewEngineError(fmt.Sprintf("%s api error: %s", req.Backend, err.Error()))
	}
	if len(resp.Choices) == 0 {
		return "", nil, api.NewEngineError(req.Backend + " returned no choices")
	}

	usage := &engine.UsageSummary{
		PromptTokens:     int(resp.Usage.PromptTokens),
		CompletionTokens: int(resp.Usage.CompletionTokens),
	}
	return resp.Choices[0].Message.Content, usage, nil
}
