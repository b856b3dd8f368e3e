package confidx

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a GET request and returns the response body.
	// A non-success HTTP status is an error carrying the URL, the reason
	// phrase and the status code.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PageCache stores raw fetched pages on disk across runs. A cache miss is
// not an error. Cached entries never expire; a stale entry is reused until
// manually removed.
type PageCache interface {
	// Get returns the cached content for name.
	// ok reports whether the entry exists.
	Get(ctx context.Context, name string) (content string, ok bool, err error)

	// Put persists content under name, creating parent directories as needed.
	Put(ctx context.Context, name string, content string) error
}
