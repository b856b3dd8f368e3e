// Package crawl provides the incremental indexing pipeline. It walks the
// two-level link graph of the schedule site (index page -> event pages ->
// speaker pages), skips events already present in the store, and commits
// new documents to the full-text index.
package crawl

import (
	"context"

	"github.com/confidx/confidx"
)

// indexCacheName is the cache entry name for the raw schedule index page.
const indexCacheName = "index.html"

// Indexer orchestrates an incremental crawl of the schedule site.
// Execution is strictly sequential: one fetch at a time, no retries.
type Indexer struct {
	Site    confidx.Site
	Fetcher confidx.Fetcher
	Cache   confidx.PageCache
	Parser  confidx.PageParser
	Store   confidx.DocumentStore

	// MaxEvents caps the number of newly indexed events per run.
	// Zero means no cap.
	MaxEvents int
}

// Result holds the outcome of an indexing run.
type Result struct {
	EventsAdded   int
	EventsSkipped int
	SpeakersAdded int
}

// ProgressEvent reports progress during an indexing run.
type ProgressEvent struct {
	Type ProgressType
	ID   string
	URL  string
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressEventSkipped ProgressType = iota
	ProgressEventAdded
	ProgressSpeakerAdded
	ProgressCapReached
)

// ProgressFunc is a callback for reporting indexing progress.
type ProgressFunc func(event ProgressEvent)

// Run executes one incremental indexing pass. The set of already-indexed
// URLs is snapshotted once at the start; documents written during the run
// are not re-queried, so a duplicate URL surfacing mid-run (a speaker
// appearing at two events) is reported by the store as a conflict and
// skipped silently. Any fetch failure aborts the run immediately;
// documents already committed remain in the store.
func (ix *Indexer) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	indexHTML, err := ix.indexPage(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := ix.Store.IndexedURLs(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, eventID := range confidx.ExtractEventIDs(indexHTML) {
		url := ix.Site.EventURL(eventID)
		if existing[url] {
			result.EventsSkipped++
			notify(progress, ProgressEvent{Type: ProgressEventSkipped, ID: eventID, URL: url})
			continue
		}

		if err := ix.indexEvent(ctx, eventID, url, progress, result); err != nil {
			return nil, err
		}

		if ix.MaxEvents > 0 && result.EventsAdded >= ix.MaxEvents {
			notify(progress, ProgressEvent{Type: ProgressCapReached})
			break
		}
	}

	return result, nil
}

// indexPage returns the schedule index HTML, fetching and caching it on a
// cache miss. A cached copy is reused until manually cleared.
func (ix *Indexer) indexPage(ctx context.Context) (string, error) {
	html, ok, err := ix.Cache.Get(ctx, indexCacheName)
	if err != nil {
		return "", err
	}
	if ok {
		return html, nil
	}

	html, err = ix.Fetcher.Fetch(ctx, ix.Site.IndexURL)
	if err != nil {
		return "", err
	}
	if err := ix.Cache.Put(ctx, indexCacheName, html); err != nil {
		return "", err
	}

	return html, nil
}

// indexEvent fetches a single event page, writes its document and then the
// documents of every speaker it references. An event whose URL turns out to
// be a duplicate (the index page listing the same ID twice in one run) was
// already fully processed, so its speakers are not revisited.
func (ix *Indexer) indexEvent(ctx context.Context, eventID, url string, progress ProgressFunc, result *Result) error {
	html, err := ix.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	added, err := ix.create(ctx, confidx.NewEventDocument(url, ix.Parser.ParseEvent(html)))
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	result.EventsAdded++
	notify(progress, ProgressEvent{Type: ProgressEventAdded, ID: eventID, URL: url})

	for _, speakerID := range confidx.ExtractSpeakerIDs(html) {
		if err := ix.indexSpeaker(ctx, speakerID, progress, result); err != nil {
			return err
		}
	}

	return nil
}

// indexSpeaker fetches and writes one speaker document. Speakers are not
// deduplicated across events beyond the store's URL uniqueness: the same
// speaker at a second event is re-fetched and then skipped on conflict.
func (ix *Indexer) indexSpeaker(ctx context.Context, speakerID string, progress ProgressFunc, result *Result) error {
	url := ix.Site.SpeakerURL(speakerID)
	html, err := ix.Fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}

	added, err := ix.create(ctx, confidx.NewSpeakerDocument(url, ix.Parser.ParseSpeaker(html)))
	if err != nil {
		return err
	}
	if added {
		result.SpeakersAdded++
		notify(progress, ProgressEvent{Type: ProgressSpeakerAdded, ID: speakerID, URL: url})
	}

	return nil
}

// create writes a document, treating a duplicate URL as a silent skip.
func (ix *Indexer) create(ctx context.Context, doc *confidx.Document) (bool, error) {
	err := ix.Store.CreateDocument(ctx, doc)
	if confidx.ErrorCode(err) == confidx.ECONFLICT {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
