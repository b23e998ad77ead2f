// Package observability provides Prometheus metrics and HTTP middleware
// for monitoring the RLM bridge.
package observability

import "github.com/prometheus/client_golang/prometheus"

// LLMBuckets defines histogram buckets suited for LLM inference latencies,
// ranging from 100ms to 120s.
var LLMBuckets = []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120}

var (
	// RequestsTotal counts all HTTP requests by method, status class, and path.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlmbridge_requests_total",
			Help: "Total requests",
		},
		[]string{"method", "status", "path"},
	)

	// RequestDuration records HTTP request duration in seconds by method and path.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rlmbridge_request_duration_seconds",
			Help:    "Request duration",
			Buckets: LLMBuckets,
		},
		[]string{"method", "path"},
	)

	// EngineRequestsTotal counts completions dispatched to the RLM engine.
	EngineRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlmbridge_engine_requests_total",
			Help: "Engine requests",
		},
		[]string{"backend", "model", "status"},
	)

	// EngineLatency records engine completion latency in seconds.
	EngineLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rlmbridge_engine_latency_seconds",
			Help:    "Engine latency",
			Buckets: LLMBuckets,
		},
		[]string{"backend", "model"},
	)

	// EngineTokensTotal counts tokens reported by the engine by direction
	// (input/output).
	EngineTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rlmbridge_engine_tokens_total",
			Help: "Token count",
		},
		[]string{"backend", "model", "direction"},
	)

	// MockCompletionsTotal counts completions answered by the mock fallback
	// because no engine was available.
	MockCompletionsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rlmbridge_mock_completions_total",
			Help: "Mock fallback completions",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		EngineRequestsTotal,
		EngineLatency,
		EngineTokensTotal,
		MockCompletionsTotal,
	)
}
