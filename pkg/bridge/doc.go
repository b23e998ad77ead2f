// Package bridge implements the request/response translation core of the
// RLM bridge.
//
// Two cooperating pieces, both stateless per request:
//
//   - The message adapter ([ToContextAndQuery]) collapses an ordered
//     sequence of conversational turns into the (context, query) pair the
//     engine expects. It is a total function: malformed input degrades to
//     empty strings, it never fails.
//   - The [Orchestrator] resolves effective configuration, builds the
//     engine prompt, invokes the engine, and normalizes the result. An
//     unavailable engine is absorbed into a marked mock completion; any
//     other engine failure propagates as an engine_error.
//
// [Service] binds both behind the transport.Completer contract. Each
// request is a fresh linear pipeline with no retry, caching, or shared
// mutable state.
package bridge
