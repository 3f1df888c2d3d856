package chromem_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/companionlabs/ava-go-sdk/memory"
	"github.com/companionlabs/ava-go-sdk/memory/store/chromem"
)

// Interface compliance.
var _ memory.Store = (*chromem.Store)(nil)

func vec(dims int, hot int) []float32 {
	v := make([]float32, dims)
	v[hot] = 1
	return v
}

func TestStore_SearchRanksBySimilarity(t *testing.T) {
	ctx := context.Background()
	store, err := chromem.New("", "test")
	require.NoError(t, err)

	recA := memory.NewRecord("Sam: I like jazz\nAva: noted")
	recA.Embedding = vec(8, 0)
	recB := memory.NewRecord("Sam: my dog is Rex\nAva: cute")
	recB.Embedding = vec(8, 1)
	require.NoError(t, store.Add(ctx, recA))
	require.NoError(t, store.Add(ctx, recB))

	results, err := store.Search(ctx, vec(8, 1), 2)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, recB.ID, results[0].ID, "closest record first")
	assert.Equal(t, recB.Content, results[0].Content)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestStore_EmptySearchIsNotAnError(t *testing.T) {
	store, err := chromem.New("", "test")
	require.NoError(t, err)

	results, err := store.Search(context.Background(), vec(8, 0), 3)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestStore_KClampedToCollectionSize(t *testing.T) {
	ctx := context.Background()
	store, err := chromem.New("", "test")
	require.NoError(t, err)

	rec := memory.NewRecord("only one")
	rec.Embedding = vec(8, 0)
	require.NoError(t, store.Add(ctx, rec))

	results, err := store.Search(ctx, vec(8, 0), 5)
	require.NoError(t, err, "asking for more results than documents must not fail")
	assert.Len(t, results, 1)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	store, err := chromem.New(dir, "persist_test")
	require.NoError(t, err)
	rec := memory.NewRecord("Sam: remember this\nAva: always")
	rec.Embedding = vec(8, 2)
	require.NoError(t, store.Add(ctx, rec))
	require.NoError(t, store.Close())

	reopened, err := chromem.New(dir, "persist_test")
	require.NoError(t, err)
	results, err := reopened.Search(ctx, vec(8, 2), 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, rec.Content, results[0].Content)
}
