// Package websearch wraps the Tavily search API. The pipeline must never
// abort because a search failed, so the client masks every provider error
// behind a fixed fallback string: one attempt per query, no retry, no
// caching.
package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Fallback is returned whenever the provider fails for any reason.
const Fallback = "I couldn't search the web right now."

const defaultEndpoint = "https://api.tavily.com/search"

// Searcher is the interface the companion orchestrator consumes. Search
// never fails; a broken provider yields Fallback.
type Searcher interface {
	Search(ctx context.Context, query string) string
}

// Options configure the Tavily client.
type Options struct {
	// SearchDepth is "basic" or "advanced".
	SearchDepth string

	// MaxResults caps the number of results per query.
	MaxResults int

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client

	// Endpoint overrides the API URL (tests).
	Endpoint string
}

// Tavily implements Searcher against the Tavily REST API.
type Tavily struct {
	apiKey string
	opts   Options
}

// NewTavily creates a Tavily client with the given API key.
func NewTavily(apiKey string, optFns ...func(o *Options)) *Tavily {
	opts := Options{
		SearchDepth: "basic",
		MaxResults:  3,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		Endpoint:    defaultEndpoint,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Tavily{apiKey: apiKey, opts: opts}
}

// Search returns formatted result text for the query, or Fallback on any
// provider failure. An empty result set is not a failure and returns "".
func (t *Tavily) Search(ctx context.Context, query string) string {
	text, err := t.search(ctx, query)
	if err != nil {
		log.Printf("[SEARCH] Web search failed: %v", err)
		return Fallback
	}
	return text
}

type searchRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchResponse struct {
	Answer  string         `json:"answer,omitempty"`
	Results []searchResult `json:"results"`
}

func (t *Tavily) search(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(searchRequest{
		APIKey:      t.apiKey,
		Query:       query,
		SearchDepth: t.opts.SearchDepth,
		MaxResults:  t.opts.MaxResults,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.opts.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tavily request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("tavily status %d: %s", resp.StatusCode, msg)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return formatResults(parsed), nil
}

// formatResults renders the response as plain text suitable for direct
// prompt injection: answer first when present, then one block per result.
func formatResults(resp searchResponse) string {
	var blocks []string
	if resp.Answer != "" {
		blocks = append(blocks, resp.Answer)
	}
	for _, r := range resp.Results {
		blocks = append(blocks, fmt.Sprintf("%s\n%s\nSource: %s", r.Title, r.Content, r.URL))
	}
	return strings.Join(blocks, "\n\n")
}
