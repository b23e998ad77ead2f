package engine

// Credentials holds one API key slot per supported backend identifier.
// Values come from process-wide secret configuration, read once at startup.
type Credentials struct {
	OpenRouter string
	OpenAI     string
	Anthropic  string
}

// ForBackend maps a backend identifier to its credential. Unknown
// identifiers resolve to an empty credential rather than failing; the
// engine decides whether a credential is mandatory.
func (c Credentials) ForBackend(backend string) string {
	switch backend {
	case "openrouter":
		return c.OpenRouter
	case "openai":
		return c.OpenAI
	case "anthropic":
		return c.Anthropic
	default:
		return ""
	}
}

// Empty reports whether no credential slot is populated.
func (c Credentials) Empty() bool {
	return c == Credentials{}
}
