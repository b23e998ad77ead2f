// Package http serves the bridge API over HTTP: request decoding and
// validation, route dispatch, and server lifecycle with graceful shutdown.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rlmdev/rlmbridge/pkg/api"
	"github.com/rlmdev/rlmbridge/pkg/engine"
	"github.com/rlmdev/rlmbridge/pkg/observability"
	"github.com/rlmdev/rlmbridge/pkg/transport"
)

// Service identity reported by the index endpoint.
const (
	ServiceName    = "RLM Bridge Server"
	ServiceVersion = "0.1.0"
	servicePhase   = "1 - MVP (final text, no streaming, no tools)"
)

// Config holds configuration for the HTTP adapter.
type Config struct {
	Addr           string
	MaxBodySize    int64
	MetricsEnabled bool
	MetricsPath    string

	// DefaultBackend and DefaultModel are reported by the health endpoint.
	DefaultBackend string
	DefaultModel   string
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8765",
		MaxBodySize:    10 << 20, // 10 MB
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}
}

// Adapter routes bridge requests to the Completer and serializes results.
type Adapter struct {
	completer  transport.Completer
	engineInfo func() engine.Info
	mux        *http.ServeMux
	config     Config
}

// NewAdapter creates an HTTP adapter. engineInfo supplies provisioning
// state for the health endpoint; nil means "no engine". Middleware is
// applied to the Completer in the given order.
func NewAdapter(completer transport.Completer, engineInfo func() engine.Info, cfg Config, middlewares ...transport.Middleware) *Adapter {
	if len(middlewares) > 0 {
		completer = transport.Chain(middlewares...)(completer)
	}
	if engineInfo == nil {
		engineInfo = func() engine.Info { return engine.Info{} }
	}

	a := &Adapter{
		completer:  completer,
		engineInfo: engineInfo,
		mux:        http.NewServeMux(),
		config:     cfg,
	}

	a.mux.HandleFunc("POST /completion", a.handleCompletion)
	a.mux.HandleFunc("GET /health", a.handleHealth)
	a.mux.HandleFunc("GET /{$}", a.handleIndex)
	if cfg.MetricsEnabled {
		a.mux.Handle("GET "+cfg.MetricsPath, promhttp.Handler())
	}

	return a
}

// Handler returns the http.Handler for this adapter, wrapped with the
// HTTP-level middleware (CORS, metrics, request ID propagation). Use this
// to integrate with an http.Server or test with httptest.
func (a *Adapter) Handler() http.Handler {
	return transport.CORS(observability.MetricsMiddleware(httpRequestIDMiddleware(a.mux)))
}

// httpRequestIDMiddleware propagates the X-Request-ID header into the
// request context and echoes it back on the response.
func httpRequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get("X-Request-ID"); id != "" {
			r = r.WithContext(transport.ContextWithRequestID(r.Context(), id))
			w.Header().Set("X-Request-ID", id)
		}
		next.ServeHTTP(w, r)
	})
}

type healthResponse struct {
	Status          string `json:"status"`
	EngineAvailable bool   `json:"engineAvailable"`
	EngineVersion   string `json:"engineVersion"`
	DefaultBackend  string `json:"defaultBackend"`
	DefaultModel    string `json:"defaultModel"`
}

// handleHealth handles GET /health.
func (a *Adapter) handleHealth(w http.ResponseWriter, r *http.Request) {
	info := a.engineInfo()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "ok",
		EngineAvailable: info.Available,
		EngineVersion:   info.Version,
		DefaultBackend:  a.config.DefaultBackend,
		DefaultModel:    a.config.DefaultModel,
	})
}

type indexResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Phase     string            `json:"phase"`
}

// handleIndex handles GET / with a static service description.
func (a *Adapter) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, indexResponse{
		Name:    ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string]string{
			"GET /health":      "Health check",
			"POST /completion": "Run RLM completion",
		},
		Phase: servicePhase,
	})
}

// handleCompletion handles POST /completion. Validation failures are
// rejected here with the exact caller-facing messages; they never reach
// the bridge core.
func (a *Adapter) handleCompletion(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			transport.WriteErrorResponse(w,
				api.NewInvalidRequestError("request body too large"),
				http.StatusRequestEntityTooLarge,
			)
			return
		}
		transport.WriteError(w, api.NewInvalidRequestError("No JSON body provided"))
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		transport.WriteError(w, api.NewInvalidRequestError("No JSON body provided"))
		return
	}

	// A JSON null or empty object carries no payload and counts as a
	// missing body, not as a body missing its messages.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		transport.WriteError(w, api.NewInvalidRequestError("No JSON body provided"))
		return
	}

	var req api.CompletionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		transport.WriteError(w, api.NewInvalidRequestError("No JSON body provided"))
		return
	}

	if len(req.Messages) == 0 {
		transport.WriteError(w, api.NewInvalidRequestError("No messages provided"))
		return
	}

	resp, err := a.completer.Complete(r.Context(), &req)
	if err != nil {
		var apiErr *api.Error
		if !errors.As(err, &apiErr) {
			apiErr = api.NewServerError(err.Error())
		}
		transport.WriteError(w, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
