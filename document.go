package confidx

import (
	"context"
	"strings"
	"time"
)

// Document types stored in the index.
const (
	DocTypeEvent   = "event"
	DocTypeSpeaker = "speaker"
)

// Document is the unit stored in the search index. The URL uniquely
// identifies a document for the lifetime of the index; documents are
// immutable once written. Only Content is tokenized for search, the
// remaining fields are stored for display.
type Document struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Type        string    `json:"type"`
	Subtype     string    `json:"subtype"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Org         string    `json:"org"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Type != DocTypeEvent && d.Type != DocTypeSpeaker {
		return Errorf(EINVALID, "document type must be %q or %q", DocTypeEvent, DocTypeSpeaker)
	}
	return nil
}

// NewEventDocument builds an event document from a parsed event page.
// Content is derived from the other fields here and never updated
// independently.
func NewEventDocument(url string, page EventPage) *Document {
	return &Document{
		URL:         url,
		Type:        DocTypeEvent,
		Subtype:     page.Type,
		Title:       page.Title,
		Description: page.Abstract,
		Content:     strings.Join([]string{DocTypeEvent, page.Type, page.Title, page.Abstract}, "\n"),
	}
}

// NewSpeakerDocument builds a speaker document from a parsed speaker page.
func NewSpeakerDocument(url string, page SpeakerPage) *Document {
	return &Document{
		URL:         url,
		Type:        DocTypeSpeaker,
		Title:       page.Name,
		Description: page.Bio,
		Org:         page.Org,
		Content:     strings.Join([]string{DocTypeSpeaker, page.Name, page.Org, page.Bio}, "\n"),
	}
}

// DocumentStore persists documents in a full-text index keyed by URL.
type DocumentStore interface {
	// CreateDocument writes a new document.
	// Returns ECONFLICT if a document with the same URL already exists.
	CreateDocument(ctx context.Context, doc *Document) error

	// IndexedURLs returns the set of URLs currently present in the store.
	IndexedURLs(ctx context.Context) (map[string]bool, error)

	// SearchDocuments runs a full-text query against the content field and
	// returns matching documents ranked by relevance.
	SearchDocuments(ctx context.Context, query string) ([]*Document, error)

	// ListDocuments returns all stored documents in insertion order.
	ListDocuments(ctx context.Context) ([]*Document, error)
}
