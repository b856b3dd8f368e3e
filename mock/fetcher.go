package mock

import (
	"context"

	"github.com/confidx/confidx"
)

var _ confidx.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of confidx.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
