// Package runner implements engine.Engine against an external RLM runner
// process speaking a small JSON-over-HTTP protocol.
package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/debug"
	"github.com/rlmdev/rlmbridge/pkg/engine"
)

// Config holds configuration for the runner client.
type Config struct {
	// BaseURL is the root URL of the runner, for example http://localhost:8091.
	BaseURL string

	// Timeout bounds a single completion round trip. Zero means no client
	// timeout; the request context controls the lifetime instead.
	Timeout time.Duration
}

// Client is an engine.Engine backed by an external runner process.
type Client struct {
	cfg    Config
	client *http.Client

	probeOnce sync.Once
	version   string
}

var _ engine.Engine = (*Client)(nil)

// New creates a runner client. Returns an error if the configuration is
// invalid.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("runner: BaseURL is required")
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Complete sends the prompt to the runner and translates its reply.
func (c *Client) Complete(ctx context.Context, req *engine.Request) (*engine.Result, error) {
	wireReq := translateRequest(req)

	body, err := json.Marshal(wireReq)
	if err != nil {
		return nil, api.NewServerError(fmt.Sprintf("failed to marshal request: %s", err.Error()))
	}

	url := c.cfg.BaseURL + "/completion"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, api.NewServerError(fmt.Sprintf("failed to create HTTP request: %s", err.Error()))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	debug.Log("engine", "runner request", "url", url, "backend", req.Backend, "model", req.Model)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, mapNetworkError(err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, mapHTTPError(httpResp)
	}

	var wireResp completionResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&wireResp); err != nil {
		return nil, api.NewEngineError(fmt.Sprintf("failed to parse runner response: %s", err.Error()))
	}

	return translateResponse(&wireResp), nil
}

// Info reports runner availability. The version is probed lazily on first
// call and cached; a failed probe leaves it empty without marking the
// runner unavailable, since the probe endpoint is optional.
func (c *Client) Info() engine.Info {
	c.probeOnce.Do(func() {
		c.version = c.probeVersion()
	})
	return engine.Info{
		Available: true,
		Version:   c.version,
		Mode:      "runner",
	}
}

func (c *Client) probeVersion() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/version", nil)
	if err != nil {
		return ""
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}

	var v struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return ""
	}
	return v.Version
}

// Close releases client resources.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}
