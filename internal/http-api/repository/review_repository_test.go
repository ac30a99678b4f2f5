package repository

import (
	"context"
	"testing"

	"moviehub/internal/http-api/models"
	"moviehub/internal/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_LoadWithNoStoredValue(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore(), nil)

	reviews := repo.Load(context.Background(), 550)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewRepository_SaveThenLoadRoundTrip(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()

	stored := []models.Review{
		{Rating: 9, Comment: "masterpiece"},
		{Rating: 3, Comment: "not for me"},
		{Rating: 7, Comment: "solid"},
	}

	require.NoError(t, repo.Save(ctx, 550, stored))

	loaded := repo.Load(ctx, 550)
	assert.Equal(t, stored, loaded)
}

func TestReviewRepository_SaveOverwritesPriorValue(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 1, []models.Review{{Rating: 5, Comment: "ok"}}))
	require.NoError(t, repo.Save(ctx, 1, []models.Review{
		{Rating: 5, Comment: "ok"},
		{Rating: 8, Comment: "better on rewatch"},
	}))

	loaded := repo.Load(ctx, 1)
	require.Len(t, loaded, 2)
	assert.Equal(t, "better on rewatch", loaded[1].Comment)
}

func TestReviewRepository_CollectionsAreScopedPerMovie(t *testing.T) {
	repo := NewReviewRepository(kvstore.NewMemoryStore(), nil)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 10, []models.Review{{Rating: 2, Comment: "meh"}}))

	assert.Empty(t, repo.Load(ctx, 11))
	assert.Len(t, repo.Load(ctx, 10), 1)
}

func TestReviewRepository_MalformedStoredValueReadsAsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewReviewRepository(store, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "movie-reviews-99", []byte("{not json")))

	reviews := repo.Load(ctx, 99)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewRepository_StoredNullReadsAsEmpty(t *testing.T) {
	store := kvstore.NewMemoryStore()
	repo := NewReviewRepository(store, nil)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "movie-reviews-99", []byte("null")))

	reviews := repo.Load(ctx, 99)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
