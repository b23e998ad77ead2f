package runner

import "github.com/rlmdev/rlmbridge/pkg/engine"

// completionRequest is the wire format sent to the runner.
type completionRequest struct {
	Prompt   string `json:"prompt"`
	Backend  string `json:"backend"`
	Model    string `json:"model"`
	APIKey   string `json:"api_key,omitempty"`
	MaxDepth int    `json:"max_depth"`
}

// completionResponse is the wire format returned by the runner.
type completionResponse struct {
	Response      string               `json:"response"`
	Usage         *engine.UsageSummary `json:"usage,omitempty"`
	Depth         int                  `json:"depth"`
	ExecutionTime float64              `json:"execution_time"`
}

func translateRequest(req *engine.Request) *completionRequest {
	return &completionRequest{
		Prompt:   req.Prompt,
		Backend:  req.Backend,
		Model:    req.Model,
		APIKey:   req.APIKey,
		MaxDepth: req.MaxDepth,
	}
}

func translateResponse(resp *completionResponse) *engine.Result {
	return &engine.Result{
		Response:      resp.Response,
		Usage:         resp.Usage,
		Depth:         resp.Depth,
		ExecutionTime: resp.ExecutionTime,
	}
}
