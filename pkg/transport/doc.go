// Package transport defines the handler contract and middleware chain for
// the bridge's HTTP transport layer.
//
// The transport layer deserializes incoming completion requests into the
// types defined in pkg/api, rejects invalid ones before the bridge core
// runs, dispatches the rest through a [Completer], and serializes the
// result. Built-in middleware provides panic recovery, request ID
// assignment (X-Request-ID), and structured logging via log/slog; CORS is
// applied at the HTTP level.
//
// This package uses only Go standard library packages. HTTP serving uses
// net/http with Go 1.22+ ServeMux routing patterns.
package transport
