package reactagent

import (
	"time"
)

// DefaultModel is the model used when neither the agent nor the caller
// names one. It is an OpenRouter model identifier.
const DefaultModel = "xiaomi/mimo-v2-flash:free"

// Config holds configuration options for a Runner
type Config struct {
	MaxIterations  int           // Reasoning cycle cap, strictly enforced
	Verbose        bool          // Print intermediate reasoning and observations
	RequestTimeout time.Duration // Per-request deadline when the caller's context has none
	Temperature    float32
	MaxTokens      int
	DefaultModel   string
	OnStep         func(Step) // Optional trace callback, invoked synchronously
}

// DefaultConfig returns default configuration values
func DefaultConfig() *Config {
	return &Config{
		MaxIterations:  10,
		Verbose:        true,
		RequestTimeout: 60 * time.Second,
		Temperature:    0.7,
		MaxTokens:      2000,
		DefaultModel:   DefaultModel,
	}
}
