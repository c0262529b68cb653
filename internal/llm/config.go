package llm

// Default request knobs, overridable per call site and via configuration.
const (
	DefaultModel       = "claude-sonnet-4-20250514"
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.3
)

// Config holds completion-service configuration. It is read once at
// startup and treated as read-only afterwards.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	RateLimit   int // requests per minute; 0 uses the limiter default
}
