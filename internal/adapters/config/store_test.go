package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pakt/internal/adapters/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestStore_Get(t *testing.T) {
	home := t.TempDir()
	writeFile(t, home, "config.yaml", `
registry:
  index: https://mirror.example.com
  token: sekrit
http:
  proxy: http://proxy:3128
  timeout: 60
`)

	store, err := config.NewStoreAt(home)
	require.NoError(t, err)

	index, ok := store.GetString("registry.index")
	assert.True(t, ok)
	assert.Equal(t, "https://mirror.example.com", index)

	token, ok := store.GetString("registry.token")
	assert.True(t, ok)
	assert.Equal(t, "sekrit", token)

	timeout, ok := store.GetInt("http.timeout")
	assert.True(t, ok)
	assert.Equal(t, int64(60), timeout)

	_, ok = store.GetString("registry.missing")
	assert.False(t, ok)
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	store, err := config.NewStoreAt(t.TempDir())
	require.NoError(t, err)

	_, ok := store.GetString("registry.index")
	assert.False(t, ok)
	_, ok = store.GetInt("http.timeout")
	assert.False(t, ok)
}

func TestStore_SaveRegistryLogin(t *testing.T) {
	t.Run("writes token", func(t *testing.T) {
		home := t.TempDir()
		store, err := config.NewStoreAt(home)
		require.NoError(t, err)

		require.NoError(t, store.SaveRegistryLogin("tok-123"))

		reloaded, err := config.NewStoreAt(home)
		require.NoError(t, err)
		token, ok := reloaded.GetString("registry.token")
		assert.True(t, ok)
		assert.Equal(t, "tok-123", token)
	})

	t.Run("keeps configured index", func(t *testing.T) {
		home := t.TempDir()
		writeFile(t, home, "config.yaml", "registry:\n  index: https://mirror.example.com\n")

		store, err := config.NewStoreAt(home)
		require.NoError(t, err)
		require.NoError(t, store.SaveRegistryLogin("tok-456"))

		reloaded, err := config.NewStoreAt(home)
		require.NoError(t, err)
		index, ok := reloaded.GetString("registry.index")
		assert.True(t, ok)
		assert.Equal(t, "https://mirror.example.com", index)
		token, ok := reloaded.GetString("registry.token")
		assert.True(t, ok)
		assert.Equal(t, "tok-456", token)
	})
}

func TestGitProxyFrom(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "gitconfig", "[http]\n\tproxy = http://git-proxy:8080\n")

	proxy, ok := config.GitProxyFrom(path)
	assert.True(t, ok)
	assert.Equal(t, "http://git-proxy:8080", proxy)

	_, ok = config.GitProxyFrom(filepath.Join(dir, "nope"))
	assert.False(t, ok)
}
