package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Record is a single persisted memory unit: the free-text content of one
// conversation turn plus its embedding vector. Records are append-only;
// nothing in this system mutates or deletes them.
type Record struct {
	ID        string
	Content   string
	CreatedAt time.Time
	Embedding []float32
}

// NewRecord creates a Record for the given content. The embedding is set
// later by the Manager, at write time.
func NewRecord(content string) Record {
	return Record{
		ID:        uuid.New().String(),
		Content:   content,
		CreatedAt: time.Now(),
	}
}

// Result is a Record returned from a similarity search, with the backend's
// similarity score attached.
type Result struct {
	Record
	Similarity float32
}

// Store is the vector storage backend. The SDK ships chromem.Store;
// production deployments can swap in another backend (e.g. pgvector)
// behind the same interface.
type Store interface {
	// Add appends one record. The record must have its embedding set.
	Add(ctx context.Context, rec Record) error

	// Search returns up to k records ranked by similarity descending.
	// An empty or underfilled store returns fewer (possibly zero)
	// results, never an error.
	Search(ctx context.Context, embedding []float32, k int) ([]Result, error)

	// Close releases resources.
	Close() error
}

// Embedder converts text to vector embeddings. The embedding service is
// assumed deterministic: identical text yields an identical vector.
// Implementations: gemini.Embedder (remote), mock.Embedder (tests).
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size.
	Dimensions() int
}

// Manager is the interface the companion orchestrator talks to.
//
// Retrieve returns a prompt-ready string: the top-K most similar record
// contents joined by newlines, or NoRelevantMemories when nothing is
// stored. Remember persists one completed turn; its failure propagates
// to the caller because silent memory loss is worse than a visible fault.
type Manager interface {
	Retrieve(ctx context.Context, query string) (string, error)
	Remember(ctx context.Context, text string) error
}
