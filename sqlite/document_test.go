package sqlite_test

import (
	"context"
	"testing"

	"github.com/confidx/confidx"
	"github.com/confidx/confidx/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an in-memory DB with the schema applied, closed via
// t.Cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	_, err := db.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	t.Run("round-trips stored fields by URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		doc := confidx.NewEventDocument("https://nips.cc/Conferences/2019/Schedule?showEvent=42", confidx.EventPage{
			Title:    "Talk X",
			Type:     "Oral",
			Abstract: "About X",
		})
		require.NoError(t, svc.CreateDocument(ctx, doc))
		assert.NotEmpty(t, doc.ID)
		assert.NotEmpty(t, doc.ContentHash)
		assert.False(t, doc.IndexedAt.IsZero())

		docs, err := svc.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)

		got := docs[0]
		assert.Equal(t, doc.URL, got.URL)
		assert.Equal(t, "event", got.Type)
		assert.Equal(t, "Oral", got.Subtype)
		assert.Equal(t, "Talk X", got.Title)
		assert.Equal(t, "About X", got.Description)
		assert.Empty(t, got.Org)
		assert.Equal(t, "event\nOral\nTalk X\nAbout X", got.Content)
	})

	t.Run("duplicate URL is a conflict", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		first := confidx.NewSpeakerDocument("https://example.com/speaker/1", confidx.SpeakerPage{Name: "Jane"})
		require.NoError(t, svc.CreateDocument(ctx, first))

		second := confidx.NewSpeakerDocument("https://example.com/speaker/1", confidx.SpeakerPage{Name: "Jane"})
		err := svc.CreateDocument(ctx, second)
		require.Error(t, err)
		assert.Equal(t, confidx.ECONFLICT, confidx.ErrorCode(err))

		// The store still holds exactly one document.
		docs, err := svc.ListDocuments(ctx)
		require.NoError(t, err)
		assert.Len(t, docs, 1)
	})

	t.Run("document with all-empty parsed fields is still written", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		doc := confidx.NewEventDocument("https://example.com/event/empty", confidx.EventPage{})
		require.NoError(t, svc.CreateDocument(ctx, doc))

		docs, err := svc.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Empty(t, docs[0].Title)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))

		err := svc.CreateDocument(context.Background(), &confidx.Document{Type: "event"})
		require.Error(t, err)
		assert.Equal(t, confidx.EINVALID, confidx.ErrorCode(err))
	})
}

func TestDocumentService_IndexedURLs(t *testing.T) {
	t.Parallel()

	t.Run("empty index yields empty set", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))

		urls, err := svc.IndexedURLs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("returns every stored URL", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, confidx.NewEventDocument("https://example.com/event/1", confidx.EventPage{})))
		require.NoError(t, svc.CreateDocument(ctx, confidx.NewSpeakerDocument("https://example.com/speaker/1", confidx.SpeakerPage{})))

		urls, err := svc.IndexedURLs(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{
			"https://example.com/event/1":   true,
			"https://example.com/speaker/1": true,
		}, urls)
	})
}

func TestDocumentService_SearchDocuments(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.DocumentService) {
		t.Helper()
		ctx := context.Background()

		require.NoError(t, svc.CreateDocument(ctx, confidx.NewEventDocument("https://example.com/event/1", confidx.EventPage{
			Title:    "Deep Learning Advances",
			Type:     "Oral",
			Abstract: "New results on convolutional architectures.",
		})))
		require.NoError(t, svc.CreateDocument(ctx, confidx.NewEventDocument("https://example.com/event/2", confidx.EventPage{
			Title:    "Reinforcement Learning",
			Type:     "Poster",
			Abstract: "Exploration strategies with intrinsic rewards.",
		})))
		require.NoError(t, svc.CreateDocument(ctx, confidx.NewSpeakerDocument("https://example.com/speaker/1", confidx.SpeakerPage{
			Name: "Jane Doe",
			Org:  "MIT",
			Bio:  "Jane studies convolutional networks.",
		})))
	}

	t.Run("term present in one description returns exactly that document", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		seed(t, svc)

		docs, err := svc.SearchDocuments(context.Background(), "intrinsic")
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "https://example.com/event/2", docs[0].URL)
	})

	t.Run("term present in no content yields empty results", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		seed(t, svc)

		docs, err := svc.SearchDocuments(context.Background(), "nonexistentterm")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("matches across events and speakers", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		seed(t, svc)

		docs, err := svc.SearchDocuments(context.Background(), "convolutional")
		require.NoError(t, err)
		require.Len(t, docs, 2)

		urls := []string{docs[0].URL, docs[1].URL}
		assert.Contains(t, urls, "https://example.com/event/1")
		assert.Contains(t, urls, "https://example.com/speaker/1")
	})

	t.Run("only content is searchable, not stored-only fields", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		// The URL is stored for display but never tokenized.
		require.NoError(t, svc.CreateDocument(ctx, confidx.NewEventDocument("https://example.com/event/zanzibar", confidx.EventPage{
			Title: "Plain talk",
		})))

		docs, err := svc.SearchDocuments(ctx, "zanzibar")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestDocumentService_ListDocuments(t *testing.T) {
	t.Parallel()

	t.Run("returns documents in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))
		ctx := context.Background()

		urls := []string{
			"https://example.com/event/3",
			"https://example.com/event/1",
			"https://example.com/event/2",
		}
		for _, url := range urls {
			require.NoError(t, svc.CreateDocument(ctx, confidx.NewEventDocument(url, confidx.EventPage{})))
		}

		docs, err := svc.ListDocuments(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 3)
		for i, url := range urls {
			assert.Equal(t, url, docs[i].URL)
		}
	})

	t.Run("empty index yields no documents", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewDocumentService(mustOpenDB(t))

		docs, err := svc.ListDocuments(context.Background())
		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}
