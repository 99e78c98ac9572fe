package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRegistry tests that all built-in tools register under the names
// the system prompt advertises
func TestNewRegistry(t *testing.T) {
	registry := NewRegistry(nil)

	require.Equal(t, 5, registry.Len())
	assert.Equal(t, []string{
		"calculator",
		"get_weather",
		"get_earthquake_data",
		"search_arxiv",
		"get_currency_exchange",
	}, registry.Names())
}
