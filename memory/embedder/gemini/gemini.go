// Package gemini implements memory.Embedder against the Gemini embedding
// API. The service contract is deterministic for identical input text, so
// results are cached: the write-back embed of a freshly retrieved or just
// assembled text costs nothing.
package gemini

import (
	"context"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"google.golang.org/genai"
)

// Options configure the embedder.
type Options struct {
	// Model is the embedding model name.
	Model string

	// Dimensions is the requested output vector size.
	Dimensions int

	// CacheSize is the max total bytes of cached vectors. Zero disables
	// the cache.
	CacheSize int64
}

// Embedder calls the Gemini embedding API with a ristretto cache in front.
type Embedder struct {
	client *genai.Client
	opts   Options
	cache  *ristretto.Cache
}

// New creates an Embedder using the given API key.
func New(ctx context.Context, apiKey string, optFns ...func(o *Options)) (*Embedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return NewFromClient(client, optFns...)
}

// NewFromClient creates an Embedder from an existing genai client.
func NewFromClient(client *genai.Client, optFns ...func(o *Options)) (*Embedder, error) {
	opts := Options{
		Model:      "gemini-embedding-001",
		Dimensions: 768,
		CacheSize:  1 << 24, // 16 MiB of vectors
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	e := &Embedder{client: client, opts: opts}

	if opts.CacheSize > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: 1e5,
			MaxCost:     opts.CacheSize,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("create embedding cache: %w", err)
		}
		e.cache = cache
	}

	return e, nil
}

// Embed converts text to an embedding vector, consulting the cache first.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if e.cache != nil {
		if v, ok := e.cache.Get(text); ok {
			return v.([]float32), nil
		}
	}

	dims := int32(e.opts.Dimensions)
	resp, err := e.client.Models.EmbedContent(ctx, e.opts.Model, genai.Text(text), &genai.EmbedContentConfig{
		OutputDimensionality: &dims,
	})
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("embedding response for model %s is empty", e.opts.Model)
	}

	values := resp.Embeddings[0].Values
	if e.cache != nil {
		e.cache.Set(text, values, int64(len(values)*4))
		// Set is buffered; wait for admission so the write-back embed of
		// the same text is a guaranteed hit.
		e.cache.Wait()
	}
	return values, nil
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.opts.Dimensions
}
