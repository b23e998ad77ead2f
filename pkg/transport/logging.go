package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/rlmdev/rlmbridge/pkg/api"
)

// Logging returns middleware that emits a structured log entry per
// completion request: request ID, message count, backend override if any,
// duration, and outcome. Full failure detail stays server-side; the caller
// only ever sees the short message the error carries.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Completer) Completer {
		return CompleterFunc(func(ctx context.Context, req *api.CompletionRequest) (*api.CompletionResponse, error) {
			start := time.Now()

			backend := ""
			if req.RLMConfig != nil {
				backend = req.RLMConfig.Backend
			}

			resp, err := next.Complete(ctx, req)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.Int("messages", len(req.Messages)),
				slog.String("backend_override", backend),
				slog.Duration("duration", time.Since(start)),
			}

			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				logger.LogAttrs(ctx, slog.LevelError, "completion failed", attrs...)
			} else {
				if resp.Metadata != nil && resp.Metadata.Mock {
					attrs = append(attrs, slog.Bool("mock", true))
				}
				logger.LogAttrs(ctx, slog.LevelInfo, "completion done", attrs...)
			}

			return resp, err
		})
	}
}
