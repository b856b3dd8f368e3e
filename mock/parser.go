package mock

import "github.com/confidx/confidx"

var _ confidx.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of confidx.PageParser.
type PageParser struct {
	ParseEventFn   func(html string) confidx.EventPage
	ParseSpeakerFn func(html string) confidx.SpeakerPage
}

func (p *PageParser) ParseEvent(html string) confidx.EventPage {
	return p.ParseEventFn(html)
}

func (p *PageParser) ParseSpeaker(html string) confidx.SpeakerPage {
	return p.ParseSpeakerFn(html)
}
