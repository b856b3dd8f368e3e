package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/confidx/confidx/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache(t *testing.T) {
	t.Parallel()

	t.Run("miss is not an error", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(t.TempDir())

		content, ok, err := cache.Get(context.Background(), "index.html")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, content)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		t.Parallel()

		cache := fs.NewPageCache(t.TempDir())
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "index.html", "<html>schedule</html>"))

		content, ok, err := cache.Get(ctx, "index.html")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "<html>schedule</html>", content)
	})

	t.Run("put creates parent directories", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		cache := fs.NewPageCache(filepath.Join(base, "cache"))
		ctx := context.Background()

		require.NoError(t, cache.Put(ctx, "index.html", "cached"))

		_, err := os.Stat(filepath.Join(base, "cache", "index.html"))
		require.NoError(t, err)
	})

	t.Run("entries persist across cache instances", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		ctx := context.Background()

		require.NoError(t, fs.NewPageCache(dir).Put(ctx, "index.html", "stale but reused"))

		content, ok, err := fs.NewPageCache(dir).Get(ctx, "index.html")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "stale but reused", content)
	})
}
