package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageStoreAndGet(t *testing.T) {
	store := NewMemoryStorage("catalog-images")

	key, err := store.Store("raw", "swatch.jpg", []byte("jpegdata"), "image/jpeg")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "raw/"))
	assert.True(t, strings.HasSuffix(key, "-swatch.jpg"))

	content, ok := store.Get(key)
	assert.True(t, ok)
	assert.Equal(t, []byte("jpegdata"), content)

	_, ok = store.Get("raw/missing")
	assert.False(t, ok)
}

func TestMemoryStorageKeysAreUnique(t *testing.T) {
	store := NewMemoryStorage("catalog-images")

	k1, _ := store.Store("raw", "same.jpg", []byte("a"), "image/jpeg")
	k2, _ := store.Store("raw", "same.jpg", []byte("b"), "image/jpeg")

	assert.NotEqual(t, k1, k2)
}

func TestMemoryStorageCopiesContent(t *testing.T) {
	store := NewMemoryStorage("catalog-images")
	buf := []byte("original")

	key, _ := store.Store("raw", "x.jpg", buf, "image/jpeg")
	buf[0] = 'X'

	content, _ := store.Get(key)
	assert.Equal(t, []byte("original"), content)
}

func TestStorageURL(t *testing.T) {
	store := NewMemoryStorage("catalog-images")
	assert.Equal(t, "https://catalog-images.storage.local/raw/abc.jpg", store.URL("raw/abc.jpg"))
}

func TestFileStorageStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStorage(dir, "catalog-images")
	require.NoError(t, err)

	key, err := store.Store("products/main", "main.jpg", []byte("jpegdata"), "image/jpeg")
	assert.NoError(t, err)

	path := filepath.Join(dir, strings.ReplaceAll(key, "/", "_"))
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpegdata"), content)
}

func TestNewFileStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewFileStorage(dir, "catalog-images")

	assert.NoError(t, err)
	info, statErr := os.Stat(dir)
	assert.NoError(t, statErr)
	assert.True(t, info.IsDir())
}
