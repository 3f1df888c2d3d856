package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Tavily, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewTavily("test-key", func(o *Options) {
		o.Endpoint = srv.URL
		o.HTTPClient = srv.Client()
	})
	return client, srv
}

func TestSearch_FormatsResults(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-key", req["api_key"])
		assert.Equal(t, "latest go release", req["query"])

		json.NewEncoder(w).Encode(searchResponse{
			Answer: "Go 1.24 is out.",
			Results: []searchResult{
				{Title: "Go Blog", URL: "https://go.dev/blog", Content: "Go 1.24 released"},
			},
		})
	})

	got := client.Search(context.Background(), "latest go release")
	assert.Contains(t, got, "Go 1.24 is out.")
	assert.Contains(t, got, "Go Blog")
	assert.Contains(t, got, "Go 1.24 released")
	assert.Contains(t, got, "Source: https://go.dev/blog")
}

func TestSearch_EmptyResultsIsNotAFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(searchResponse{})
	})

	assert.Equal(t, "", client.Search(context.Background(), "obscure query"))
}

func TestSearch_ProviderErrorYieldsFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	assert.Equal(t, Fallback, client.Search(context.Background(), "anything"))
}

func TestSearch_MalformedResponseYieldsFallback(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	assert.Equal(t, Fallback, client.Search(context.Background(), "anything"))
}

func TestSearch_UnreachableProviderYieldsFallback(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	assert.Equal(t, Fallback, client.Search(context.Background(), "anything"))
}
