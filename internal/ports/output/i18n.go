package output

// Translator renders operator-facing messages (summaries, diagnostics).
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
