// Package llm provides the text-completion client used by variable
// selection, insight generation, and session summarization.
package llm

import "context"

// Request is a single-prompt completion request. Zero values for MaxTokens
// and Temperature take the provider defaults.
type Request struct {
	Prompt      string
	System      string
	MaxTokens   int
	Temperature float64
}

// Client is the interface to a text-completion backend. Implementations
// must be safe for sequential reuse across call sites with different
// token and temperature settings.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
