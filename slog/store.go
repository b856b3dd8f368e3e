package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/confidx/confidx"
)

// Ensure LoggingDocumentStore implements confidx.DocumentStore.
var _ confidx.DocumentStore = (*LoggingDocumentStore)(nil)

// LoggingDocumentStore wraps a DocumentStore with debug logging.
type LoggingDocumentStore struct {
	next   confidx.DocumentStore
	logger *slog.Logger
}

// NewLoggingDocumentStore creates a new LoggingDocumentStore.
func NewLoggingDocumentStore(next confidx.DocumentStore, logger *slog.Logger) *LoggingDocumentStore {
	return &LoggingDocumentStore{next: next, logger: logger}
}

// CreateDocument delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) CreateDocument(ctx context.Context, doc *confidx.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create document",
			"url", doc.URL,
			"type", doc.Type,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

// IndexedURLs delegates to the wrapped store and logs the snapshot size.
func (s *LoggingDocumentStore) IndexedURLs(ctx context.Context) (urls map[string]bool, err error) {
	defer func(begin time.Time) {
		s.logger.Info("indexed URLs snapshot",
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.IndexedURLs(ctx)
}

// SearchDocuments delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) SearchDocuments(ctx context.Context, query string) (docs []*confidx.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDocuments(ctx, query)
}

// ListDocuments delegates to the wrapped store and logs the operation.
func (s *LoggingDocumentStore) ListDocuments(ctx context.Context) (docs []*confidx.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ListDocuments(ctx)
}
