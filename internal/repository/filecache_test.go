package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	require.NoError(t, cache.Save("2024-10-10", []byte(`[{"id":"bitcoin"}]`)))

	payload, ok, err := cache.LoadLatest()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":"bitcoin"}]`, string(payload))
}

func TestFileCacheLatestWinsAcrossDates(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	require.NoError(t, cache.Save("2024-10-09", []byte("old")))
	require.NoError(t, cache.Save("2024-10-10", []byte("new")))
	require.NoError(t, cache.Save("2024-09-30", []byte("older")))

	payload, ok, err := cache.LoadLatest()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "new", string(payload))
}

func TestFileCacheMissingDir(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "never-created"))

	payload, ok, err := cache.LoadLatest()
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, payload)
}

func TestFileCacheIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	cache := NewFileCache(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "zzz-notes.txt"), []byte("junk"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "market_data_2024-12-31.txt"), []byte("junk"), 0o644))
	require.NoError(t, cache.Save("2024-10-10", []byte("real")))

	payload, ok, err := cache.LoadLatest()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "real", string(payload))
}

func TestFileCacheSaveOverwrites(t *testing.T) {
	cache := NewFileCache(t.TempDir())

	require.NoError(t, cache.Save("2024-10-10", []byte("first")))
	require.NoError(t, cache.Save("2024-10-10", []byte("second")))

	payload, ok, err := cache.LoadLatest()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", string(payload))
}
