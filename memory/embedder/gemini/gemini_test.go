package gemini_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/companionlabs/ava-go-sdk/memory/embedder/gemini"
)

// newTestEmbedder points the genai client at a local fake of the embedding
// endpoint and counts the requests that actually reach it.
func newTestEmbedder(t *testing.T, calls *atomic.Int32, optFns ...func(o *gemini.Options)) *gemini.Embedder {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embeddings":[{"values":[0.1,0.2,0.3]}]}`))
	}))
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     "test-key",
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: srv.Client(),
		HTTPOptions: genai.HTTPOptions{
			BaseURL: srv.URL,
		},
	})
	require.NoError(t, err)

	e, err := gemini.NewFromClient(client, optFns...)
	require.NoError(t, err)
	return e
}

func TestEmbed_RepeatTextServedFromCache(t *testing.T) {
	var calls atomic.Int32
	e := newTestEmbedder(t, &calls)
	ctx := context.Background()

	first, err := e.Embed(ctx, "Sam loves hiking in the rain")
	require.NoError(t, err)
	require.Equal(t, int32(1), calls.Load())

	second, err := e.Embed(ctx, "Sam loves hiking in the rain")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load(), "identical text must not hit the API twice")
	assert.Equal(t, first, second)
}

func TestEmbed_DistinctTextsEachCallAPI(t *testing.T) {
	var calls atomic.Int32
	e := newTestEmbedder(t, &calls)
	ctx := context.Background()

	_, err := e.Embed(ctx, "first memory")
	require.NoError(t, err)
	_, err = e.Embed(ctx, "second memory")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestEmbed_CacheDisabled(t *testing.T) {
	var calls atomic.Int32
	e := newTestEmbedder(t, &calls, func(o *gemini.Options) {
		o.CacheSize = 0
	})
	ctx := context.Background()

	_, err := e.Embed(ctx, "same text")
	require.NoError(t, err)
	_, err = e.Embed(ctx, "same text")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}
