package confidx

// EventPage holds the fields extracted from an event page.
type EventPage struct {
	Title    string
	Type     string
	Abstract string
}

// SpeakerPage holds the fields extracted from a speaker page.
type SpeakerPage struct {
	Name string
	Org  string
	Bio  string
}

// PageParser extracts typed records from raw schedule HTML.
// Implementations never fail: absence of expected structure degrades to
// empty-string fields rather than errors.
type PageParser interface {
	ParseEvent(html string) EventPage
	ParseSpeaker(html string) SpeakerPage
}
