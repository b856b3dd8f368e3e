package confidx_test

import (
	"testing"

	"github.com/confidx/confidx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventDocument(t *testing.T) {
	t.Parallel()

	doc := confidx.NewEventDocument("https://nips.cc/Conferences/2019/Schedule?showEvent=42", confidx.EventPage{
		Title:    "Talk X",
		Type:     "Oral",
		Abstract: "About X",
	})

	assert.Equal(t, "https://nips.cc/Conferences/2019/Schedule?showEvent=42", doc.URL)
	assert.Equal(t, confidx.DocTypeEvent, doc.Type)
	assert.Equal(t, "Oral", doc.Subtype)
	assert.Equal(t, "Talk X", doc.Title)
	assert.Equal(t, "About X", doc.Description)
	assert.Empty(t, doc.Org)
	assert.Equal(t, "event\nOral\nTalk X\nAbout X", doc.Content)
}

func TestNewSpeakerDocument(t *testing.T) {
	t.Parallel()

	doc := confidx.NewSpeakerDocument("https://nips.cc/Conferences/2019/Schedule?showSpeaker=42-1", confidx.SpeakerPage{
		Name: "Jane Doe",
		Org:  "MIT",
		Bio:  "Works on things.",
	})

	assert.Equal(t, confidx.DocTypeSpeaker, doc.Type)
	assert.Empty(t, doc.Subtype)
	assert.Equal(t, "Jane Doe", doc.Title)
	assert.Equal(t, "Works on things.", doc.Description)
	assert.Equal(t, "MIT", doc.Org)
	assert.Equal(t, "speaker\nJane Doe\nMIT\nWorks on things.", doc.Content)
}

func TestNewEventDocument_EmptyFields(t *testing.T) {
	t.Parallel()

	// A page without the expected structure still yields a valid document.
	doc := confidx.NewEventDocument("https://example.com/event", confidx.EventPage{})

	require.NoError(t, doc.Validate())
	assert.Equal(t, "event\n\n\n", doc.Content)
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires URL", func(t *testing.T) {
		t.Parallel()

		doc := &confidx.Document{Type: confidx.DocTypeEvent}
		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, confidx.EINVALID, confidx.ErrorCode(err))
	})

	t.Run("requires known type", func(t *testing.T) {
		t.Parallel()

		doc := &confidx.Document{URL: "https://example.com", Type: "session"}
		err := doc.Validate()

		require.Error(t, err)
		assert.Equal(t, confidx.EINVALID, confidx.ErrorCode(err))
	})

	t.Run("accepts event and speaker", func(t *testing.T) {
		t.Parallel()

		for _, typ := range []string{confidx.DocTypeEvent, confidx.DocTypeSpeaker} {
			doc := &confidx.Document{URL: "https://example.com", Type: typ}
			assert.NoError(t, doc.Validate())
		}
	})
}

func TestSite_URLs(t *testing.T) {
	t.Parallel()

	site := confidx.NeurIPS2019

	assert.Equal(t, "https://nips.cc/Conferences/2019/Schedule?showEvent=42", site.EventURL("42"))
	assert.Equal(t, "https://nips.cc/Conferences/2019/Schedule?showSpeaker=42-1", site.SpeakerURL("42-1"))
}
