// Package chromem backs memory.Store with chromem-go, a pure Go embedded
// vector database. With a path it persists to disk, so memories outlive
// the process; without one it runs in-memory (tests).
package chromem

import (
	"context"
	"fmt"
	"log"
	"time"

	chromem "github.com/philippgille/chromem-go"

	"github.com/companionlabs/ava-go-sdk/memory"
)

// DefaultCollection is the collection name used when none is configured.
// All sessions constructed with the same collection share memories; pass
// a scoped name to partition per user or per deployment.
const DefaultCollection = "companion_memory"

// Store implements memory.Store on top of a single chromem collection.
type Store struct {
	db  *chromem.DB
	col *chromem.Collection
}

// New creates a Store persisting under path. An empty path selects the
// in-memory database. Embeddings are provided by the caller, so the
// collection is created without an embedding function.
func New(path, collection string) (*Store, error) {
	var db *chromem.DB
	if path == "" {
		db = chromem.NewDB()
	} else {
		var err error
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("open persistent db: %w", err)
		}
	}

	if collection == "" {
		collection = DefaultCollection
	}

	col, err := db.GetOrCreateCollection(collection, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("get collection %q: %w", collection, err)
	}

	return &Store{db: db, col: col}, nil
}

// Add appends one record to the collection.
func (s *Store) Add(ctx context.Context, rec memory.Record) error {
	doc := chromem.Document{
		ID:        rec.ID,
		Content:   rec.Content,
		Embedding: rec.Embedding,
		Metadata: map[string]string{
			"created_at": rec.CreatedAt.Format(time.RFC3339),
		},
	}

	if err := s.col.AddDocument(ctx, doc); err != nil {
		return fmt.Errorf("add document: %w", err)
	}
	return nil
}

// Search returns up to k records by cosine similarity, descending.
// chromem rejects nResults larger than the collection, so k is clamped
// to the current document count; an empty collection returns no results
// and no error.
func (s *Store) Search(ctx context.Context, embedding []float32, k int) ([]memory.Result, error) {
	count := s.col.Count()
	if count == 0 {
		log.Printf("[CHROMEM] Collection is empty")
		return nil, nil
	}
	if k > count {
		k = count
	}

	results, err := s.col.QueryEmbedding(ctx, embedding, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query embedding: %w", err)
	}

	out := make([]memory.Result, 0, len(results))
	for _, res := range results {
		createdAt, _ := time.Parse(time.RFC3339, res.Metadata["created_at"])
		out = append(out, memory.Result{
			Record: memory.Record{
				ID:        res.ID,
				Content:   res.Content,
				CreatedAt: createdAt,
				Embedding: res.Embedding,
			},
			Similarity: res.Similarity,
		})
	}
	return out, nil
}

// Close releases resources. chromem holds everything in process memory
// (mirrored to disk when persistent), so there is nothing to tear down.
func (s *Store) Close() error {
	return nil
}
