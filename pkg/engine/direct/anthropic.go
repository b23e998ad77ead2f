package direct

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// completeAnthropic runs a completion against the Anthropic Messages API.
func completeAnthropic(ctx context.Context, req *engine.Request) (string, *engine.UsageSummary, error) {
	client := anthropic.NewClient(option.WithAPIKey(req.APIKey))

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxCompletionTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	})
	if err != nil {
		return "", nil, api.NewEngineError(fmt.Sprintf("anthropic api error: %s", err.Error()))
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}

	usage := &engine.UsageSummary{
		InputTokens:  int(resp.Usage.InputTokens),
		OutputTokens: int(resp.Usage.OutputTokens),
	}
	return text, usage, nil
}
