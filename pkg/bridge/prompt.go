package bridge

// BuildPrompt flattens context and query into the single linear text input
// the engine receives. With no context the query passes through verbatim,
// with no template wrapping.
func BuildPrompt(contextText, query string) string {
	if contextText == "" {
		return query
	}
	return "Previous conversation context:\n" + contextText + "\n\nCurrent request:\n" + query
}
