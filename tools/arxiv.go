package tools

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/prathyushnallamothu/reactagent"
)

type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
}

// ArxivSearch returns the research paper search tool backed by the arXiv
// Atom API, most recent submissions first.
func ArxivSearch(cfg *Config) reactagent.Tool {
	return reactagent.Tool{
		Name:        "search_arxiv",
		Description: "Searches for research papers on arXiv",
		Params:      []string{"query", "max_results"},
		Example:     `search_arxiv("transformers", 3)`,
		Execute: func(ctx context.Context, args []any) (string, error) {
			query, err := stringArg(args, 0, "query")
			if err != nil {
				return "", err
			}
			maxResults, err := optionalNumberArg(args, 1, "max_results", 3)
			if err != nil {
				return "", err
			}
			limit := int(maxResults)
			if limit <= 0 {
				limit = 3
			}

			params := url.Values{}
			params.Set("search_query", "all:"+query)
			params.Set("start", "0")
			params.Set("max_results", strconv.Itoa(limit))
			params.Set("sortBy", "submittedDate")
			params.Set("sortOrder", "descending")

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.ArxivURL+"?"+params.Encode(), nil)
			if err != nil {
				return "", fmt.Errorf("arXiv error: %w", err)
			}
			resp, err := cfg.HTTPClient.Do(req)
			if err != nil {
				return "", fmt.Errorf("arXiv error: %w", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return "", fmt.Errorf("arXiv error: HTTP %d", resp.StatusCode)
			}

			var feed arxivFeed
			if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
				return "", fmt.Errorf("arXiv error: %w", err)
			}

			if len(feed.Entries) == 0 {
				return fmt.Sprintf("No papers found for query %q", query), nil
			}
			if len(feed.Entries) > limit {
				feed.Entries = feed.Entries[:limit]
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Found %d recent paper(s) on %q:", len(feed.Entries), query)
			for i, entry := range feed.Entries {
				summary := collapseWhitespace(entry.Summary)
				if len(summary) > 200 {
					summary = summary[:200] + "..."
				}
				published := entry.Published
				if len(published) > 10 {
					published = published[:10]
				}
				fmt.Fprintf(&b, "\n\n%d. %s", i+1, collapseWhitespace(entry.Title))
				fmt.Fprintf(&b, "\n   Published: %s", published)
				fmt.Fprintf(&b, "\n   Summary: %s", summary)
			}
			return b.String(), nil
		},
	}
}

// collapseWhitespace normalizes the newline-wrapped text arXiv returns
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
