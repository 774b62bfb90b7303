package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, "photo.png", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "/uploads/"), "ref %q", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"), "extension kept, ref %q", ref)

	path := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(ref, "/uploads/")))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreUniqueKeys(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	a, err := store.Save(ctx, "x.jpg", strings.NewReader("a"))
	require.NoError(t, err)
	b, err := store.Save(ctx, "x.jpg", strings.NewReader("b"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
