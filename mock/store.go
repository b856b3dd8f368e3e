package mock

import (
	"context"

	"github.com/confidx/confidx"
)

var _ confidx.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of confidx.DocumentStore.
type DocumentStore struct {
	CreateDocumentFn  func(ctx context.Context, doc *confidx.Document) error
	IndexedURLsFn     func(ctx context.Context) (map[string]bool, error)
	SearchDocumentsFn func(ctx context.Context, query string) ([]*confidx.Document, error)
	ListDocumentsFn   func(ctx context.Context) ([]*confidx.Document, error)
}

func (s *DocumentStore) CreateDocument(ctx context.Context, doc *confidx.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentStore) IndexedURLs(ctx context.Context) (map[string]bool, error) {
	return s.IndexedURLsFn(ctx)
}

func (s *DocumentStore) SearchDocuments(ctx context.Context, query string) ([]*confidx.Document, error) {
	return s.SearchDocumentsFn(ctx, query)
}

func (s *DocumentStore) ListDocuments(ctx context.Context) ([]*confidx.Document, error) {
	return s.ListDocumentsFn(ctx)
}
