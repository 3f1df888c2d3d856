package memory

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// NoRelevantMemories is the sentinel substituted when retrieval finds
// nothing. The persona template receives this string instead of an empty
// slot.
const NoRelevantMemories = "No relevant memories found."

// DefaultTopK is the number of records retrieved per query.
const DefaultTopK = 3

// VectorMemory is the SDK-provided Manager implementation: embed the
// query, ask the store for the nearest records, join their contents.
// Whatever ranking the backend returns is accepted as-is; no extra
// similarity floor is applied here.
type VectorMemory struct {
	store    Store
	embedder Embedder
	topK     int
}

// VectorOption configures a VectorMemory.
type VectorOption func(*VectorMemory)

// WithTopK overrides the number of records retrieved per query.
func WithTopK(k int) VectorOption {
	return func(m *VectorMemory) {
		if k > 0 {
			m.topK = k
		}
	}
}

// NewVectorMemory creates a Manager backed by the given store and embedder.
func NewVectorMemory(store Store, embedder Embedder, opts ...VectorOption) *VectorMemory {
	m := &VectorMemory{
		store:    store,
		embedder: embedder,
		topK:     DefaultTopK,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Retrieve finds the records most similar to query and returns their
// contents joined by newlines. An empty store yields NoRelevantMemories,
// not an error.
func (m *VectorMemory) Retrieve(ctx context.Context, query string) (string, error) {
	embedding, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}

	results, err := m.store.Search(ctx, embedding, m.topK)
	if err != nil {
		return "", fmt.Errorf("search store: %w", err)
	}

	log.Printf("[MEMORY] Retrieved %d memories for query: %q", len(results), truncateLog(query, 50))
	if len(results) == 0 {
		return NoRelevantMemories, nil
	}

	contents := make([]string, 0, len(results))
	for _, res := range results {
		contents = append(contents, res.Content)
	}
	return strings.Join(contents, "\n"), nil
}

// Remember persists one completed turn as a new record, embedding it
// first. Failures propagate; the companion layer decides how to surface
// them.
func (m *VectorMemory) Remember(ctx context.Context, text string) error {
	rec := NewRecord(text)

	embedding, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed record: %w", err)
	}
	rec.Embedding = embedding

	if err := m.store.Add(ctx, rec); err != nil {
		return fmt.Errorf("store record: %w", err)
	}

	log.Printf("[MEMORY] Stored record %s: %q", rec.ID, truncateLog(text, 50))
	return nil
}

// truncateLog truncates text for logging.
func truncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
