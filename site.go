package confidx

import "fmt"

// Site describes the conference schedule site being crawled. The URL
// templates are filled with opaque identifiers extracted from the index
// and event pages.
type Site struct {
	IndexURL           string
	EventURLTemplate   string
	SpeakerURLTemplate string
}

// EventURL returns the canonical URL for an event ID.
func (s Site) EventURL(eventID string) string {
	return fmt.Sprintf(s.EventURLTemplate, eventID)
}

// SpeakerURL returns the canonical URL for a speaker ID.
func (s Site) SpeakerURL(speakerID string) string {
	return fmt.Sprintf(s.SpeakerURLTemplate, speakerID)
}

// NeurIPS2019 is the schedule site this tool was built for.
var NeurIPS2019 = Site{
	IndexURL:           "https://nips.cc/Conferences/2019/Schedule",
	EventURLTemplate:   "https://nips.cc/Conferences/2019/Schedule?showEvent=%s",
	SpeakerURLTemplate: "https://nips.cc/Conferences/2019/Schedule?showSpeaker=%s",
}
