// Package fs provides file-based caching of fetched pages.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/confidx/confidx"
)

// Ensure PageCache implements confidx.PageCache at compile time.
var _ confidx.PageCache = (*PageCache)(nil)

// PageCache caches raw pages as files under a base directory. Entries never
// expire; a cached page is reused until the file is manually removed.
type PageCache struct {
	baseDir string
}

// NewPageCache creates a PageCache rooted at baseDir. The directory is
// created lazily on the first Put.
func NewPageCache(baseDir string) *PageCache {
	return &PageCache{baseDir: baseDir}
}

// Get returns the cached content for name. A missing entry is reported via
// ok, not as an error.
func (c *PageCache) Get(_ context.Context, name string) (string, bool, error) {
	b, err := os.ReadFile(filepath.Join(c.baseDir, name))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// Put persists content under name, creating parent directories as needed.
func (c *PageCache) Put(_ context.Context, name string, content string) error {
	path := filepath.Join(c.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
