package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/confidx/confidx"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ confidx.DocumentStore = (*DocumentService)(nil)

// DocumentService implements confidx.DocumentStore using SQLite FTS5.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// documentColumns is the column list shared by all document queries.
const documentColumns = "id, url, type, subtype, title, description, org, content, content_hash, indexed_at"

// CreateDocument writes a new document. A document with the same URL
// already present in the index is reported as ECONFLICT.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *confidx.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ContentHash = hashContent(doc.Content)
	doc.IndexedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (`+documentColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.URL, doc.Type, doc.Subtype, doc.Title, doc.Description, doc.Org,
		doc.Content, doc.ContentHash, doc.IndexedAt.Format(time.RFC3339))

	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return confidx.Errorf(confidx.ECONFLICT, "document with URL %q already indexed", doc.URL)
	}

	return err
}

// IndexedURLs returns the set of URLs currently present in the index.
func (s *DocumentService) IndexedURLs(ctx context.Context) (map[string]bool, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := make(map[string]bool)
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls[url] = true
	}

	return urls, rows.Err()
}

// SearchDocuments runs a full-text query against the content field and
// returns matching documents ranked by relevance.
func (s *DocumentService) SearchDocuments(ctx context.Context, query string) ([]*confidx.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+qualifiedDocumentColumns("d")+`
		FROM documents_fts
		JOIN documents d ON d.rowid = documents_fts.rowid
		WHERE documents_fts MATCH ?
		ORDER BY documents_fts.rank
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// ListDocuments returns all stored documents in insertion order.
func (s *DocumentService) ListDocuments(ctx context.Context) ([]*confidx.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		ORDER BY rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDocuments(rows)
}

func qualifiedDocumentColumns(alias string) string {
	cols := strings.Split(documentColumns, ", ")
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanDocuments(rows *sql.Rows) ([]*confidx.Document, error) {
	var docs []*confidx.Document
	for rows.Next() {
		var doc confidx.Document
		var indexedAt string

		if err := rows.Scan(&doc.ID, &doc.URL, &doc.Type, &doc.Subtype, &doc.Title,
			&doc.Description, &doc.Org, &doc.Content, &doc.ContentHash, &indexedAt); err != nil {
			return nil, err
		}

		t, err := time.Parse(time.RFC3339, indexedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse indexed_at: %w", err)
		}
		doc.IndexedAt = t

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
