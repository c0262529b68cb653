package llm

import (
	"fmt"
	"strings"
)

// NewClient creates a completion client based on the provided
// configuration. An empty provider defaults to anthropic.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.Provider)
	}
}
