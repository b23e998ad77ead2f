// Package api defines the wire types for the RLM bridge.
//
// The bridge accepts chat-style completion requests ([CompletionRequest]),
// reshapes them for the recursive-language-model engine, and answers with a
// normalized [CompletionResponse]. Optional response parts (usage, metadata)
// are pointers with omitempty tags so absent sections are omitted rather
// than serialized as empty objects.
//
// The package has zero external dependencies and performs no I/O. Error
// replies use the flat {"error": "<message>"} wire shape regardless of the
// internal [ErrorType]; the type only drives the HTTP status mapping in the
// transport layer.
package api
