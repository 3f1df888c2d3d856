// Package mock provides an offline memory.Embedder for tests. Vectors are
// derived from a hash of the text, so identical inputs always embed to the
// identical unit vector, matching the determinism contract of the real
// embedding service. There is no semantic similarity, only identity.
package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// Embedder generates deterministic pseudo-random unit vectors.
type Embedder struct {
	dims int
}

// New creates a mock embedder producing vectors of the given size.
// A non-positive size falls back to 256.
func New(dims int) *Embedder {
	if dims <= 0 {
		dims = 256
	}
	return &Embedder{dims: dims}
}

// Embed derives a unit vector from an FNV hash of the text, expanded
// through a linear congruential generator.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	vec := make([]float32, e.dims)
	var norm float64
	for i := range vec {
		state = state*6364136223846793005 + 1442695040888963407
		v := float64(int64(state)) / float64(math.MaxInt64)
		vec[i] = float32(v)
		norm += v * v
	}

	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

// Dimensions returns the embedding vector size.
func (e *Embedder) Dimensions() int {
	return e.dims
}
