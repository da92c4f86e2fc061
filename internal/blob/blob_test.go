package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	info, err := store.Put(ctx, "betta.jpg", strings.NewReader("fake-jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "betta.jpg", info.Key)
	assert.Equal(t, int64(9), info.Size)
	assert.Equal(t, "image/jpeg", info.ContentType)
	assert.NotEmpty(t, info.URL)

	got, rc, err := store.Get(ctx, "betta.jpg")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg", string(data))
	assert.Equal(t, info.URL, got.URL)

	ok, err := store.Delete(ctx, "betta.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = store.Get(ctx, "betta.jpg")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err = store.Delete(ctx, "betta.jpg")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilesystemStore(t *testing.T) {
	store, err := NewFilesystem(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)
	ctx := context.Background()

	info, err := store.Put(ctx, "betta.png", strings.NewReader("fake-png"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/betta.png", info.URL)

	_, rc, err := store.Get(ctx, "betta.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	require.NoError(t, err)
	assert.Equal(t, "fake-png", string(data))

	ok, err := store.Delete(ctx, "betta.png")
	require.NoError(t, err)
	assert.True(t, ok)

	_, _, err = store.Get(ctx, "betta.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFilesystemStore_RejectsTraversal(t *testing.T) {
	store, err := NewFilesystem(t.TempDir(), "http://localhost:8080")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../escape.txt", strings.NewReader("x"), "text/plain")
	assert.Error(t, err)
}
