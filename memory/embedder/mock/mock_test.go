package mock

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedder_Deterministic(t *testing.T) {
	e := New(256)
	a, err := e.Embed(context.Background(), "same text")
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), "same text")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedder_DistinctForDifferentText(t *testing.T) {
	e := New(256)
	a, _ := e.Embed(context.Background(), "one")
	b, _ := e.Embed(context.Background(), "two")
	assert.NotEqual(t, a, b)
}

func TestEmbedder_UnitVector(t *testing.T) {
	e := New(128)
	v, err := e.Embed(context.Background(), "normalize me")
	require.NoError(t, err)
	require.Len(t, v, e.Dimensions())

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-5)
}
