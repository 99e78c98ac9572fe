package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const arxivFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <title>Attention Is
  All You Need</title>
    <summary>
      We propose a new simple network architecture, the Transformer,
      based solely on attention mechanisms.
    </summary>
    <published>2017-06-12T17:57:34Z</published>
  </entry>
  <entry>
    <title>Second Paper</title>
    <summary>` + "%s" + `</summary>
    <published>2024-01-02T00:00:00Z</published>
  </entry>
</feed>`

// TestArxivSearchTool tests Atom parsing and whitespace normalization
func TestArxivSearchTool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "all:transformers", r.URL.Query().Get("search_query"))
		assert.Equal(t, "2", r.URL.Query().Get("max_results"))
		assert.Equal(t, "submittedDate", r.URL.Query().Get("sortBy"))
		fmt.Fprintf(w, arxivFeedXML, "Short summary.")
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.ArxivURL = server.URL

	result, err := ArxivSearch(cfg).Execute(context.Background(), []any{"transformers", 2.0})

	require.NoError(t, err)
	assert.Contains(t, result, `Found 2 recent paper(s) on "transformers"`)
	assert.Contains(t, result, "1. Attention Is All You Need")
	assert.Contains(t, result, "Published: 2017-06-12")
	assert.Contains(t, result, "We propose a new simple network architecture")
}

// TestArxivSearchToolTruncatesSummary tests the 200-character summary cap
func TestArxivSearchToolTruncatesSummary(t *testing.T) {
	long := strings.Repeat("words and more words ", 30)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, arxivFeedXML, long)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.ArxivURL = server.URL

	result, err := ArxivSearch(cfg).Execute(context.Background(), []any{"anything"})

	require.NoError(t, err)
	assert.Contains(t, result, "...")
	for _, line := range strings.Split(result, "\n") {
		assert.LessOrEqual(t, len(line), 220)
	}
}

// TestArxivSearchToolNoResults tests the empty feed message
func TestArxivSearchToolNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0"?><feed xmlns="http://www.w3.org/2005/Atom"></feed>`)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.ArxivURL = server.URL

	result, err := ArxivSearch(cfg).Execute(context.Background(), []any{"gibberish-query"})

	require.NoError(t, err)
	assert.Equal(t, `No papers found for query "gibberish-query"`, result)
}

// TestArxivSearchToolServerError tests non-200 handling
func TestArxivSearchToolServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.ArxivURL = server.URL

	_, err := ArxivSearch(cfg).Execute(context.Background(), []any{"transformers"})

	assert.ErrorContains(t, err, "HTTP 503")
}
