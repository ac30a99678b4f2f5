package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_GetAbsentKey(t *testing.T) {
	store := NewMemoryStore()

	value, ok, err := store.Get(context.Background(), "missing")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.Set(ctx, "movie-reviews-42", []byte(`[{"rating":8,"comment":"great"}]`))
	assert.NoError(t, err)

	value, ok, err := store.Get(ctx, "movie-reviews-42")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[{"rating":8,"comment":"great"}]`), value)
}

func TestMemoryStore_OverwriteReplacesValue(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k", []byte("first")))
	assert.NoError(t, store.Set(ctx, "k", []byte("second")))

	value, ok, _ := store.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("second"), value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k", []byte("abc")))

	value, _, _ := store.Get(ctx, "k")
	value[0] = 'x'

	again, _, _ := store.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}
