// Package engine defines the contract between the bridge and the
// recursive-language-model engine it invokes.
//
// The engine is opaque to the bridge: it receives a single linear prompt
// plus invocation parameters and eventually yields a [Result]. Two
// implementations live in subpackages (an HTTP client for an external
// runner process, and a degraded single-shot mode calling provider SDKs
// directly); [None] provides the no-engine null implementation whose
// invocations report [ErrUnavailable] so the orchestrator can fall back to
// a mock completion instead of failing the request.
package engine
