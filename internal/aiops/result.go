package aiops

import "ehr-dashboard-api/internal/agent"

// Result is the tagged outcome of an operation handler. Exactly one variant
// is set; the response adapter pattern-matches on it instead of letting each
// handler pick its own transport mechanics.
type Result struct {
	field  string
	object any
	text   string
	stream <-chan agent.Chunk
}

// Object wraps a structured result, serialized under the operation-specific
// field name.
func Object(field string, v any) *Result {
	return &Result{field: field, object: v}
}

// Text wraps a buffered text result, serialized under the operation-specific
// field name.
func Text(field, s string) *Result {
	return &Result{field: field, text: s}
}

// Stream wraps an incremental text result, forwarded as a chunked body with
// no enclosing envelope.
func Stream(chunks <-chan agent.Chunk) *Result {
	return &Result{stream: chunks}
}

func (r *Result) body() map[string]any {
	if r.object != nil {
		return map[string]any{r.field: r.object}
	}
	return map[string]any{r.field: r.text}
}
