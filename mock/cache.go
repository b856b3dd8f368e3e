package mock

import (
	"context"

	"github.com/confidx/confidx"
)

var _ confidx.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of confidx.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, name string) (string, bool, error)
	PutFn func(ctx context.Context, name string, content string) error
}

func (c *PageCache) Get(ctx context.Context, name string) (string, bool, error) {
	return c.GetFn(ctx, name)
}

func (c *PageCache) Put(ctx context.Context, name string, content string) error {
	return c.PutFn(ctx, name, content)
}
