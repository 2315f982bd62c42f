package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	payload := []byte("png bytes")
	path, err := store.Save(payload)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, WallpaperFileName), path)

	got, err := os.ReadFile(path) //nolint:gosec // test-owned path
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

// TestStoreSaveReplaces verifies repeated saves reuse the fixed filename so
// the OS wallpaper reference stays valid.
func TestStoreSaveReplaces(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save([]byte("one"))
	require.NoError(t, err)
	second, err := store.Save([]byte("two"))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	got, err := os.ReadFile(second) //nolint:gosec // test-owned path
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestStoreCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "wallpapers")
	store, err := NewStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(store.Dir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
