// Package goquery provides a CSS-selector based implementation of
// confidx.PageParser for the schedule site's markup.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/confidx/confidx"
)

// Ensure Parser implements confidx.PageParser at compile time.
var _ confidx.PageParser = (*Parser)(nil)

// Parser extracts event and speaker fields from schedule pages. Missing
// structure degrades to empty fields rather than errors.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseEvent extracts the title, type and abstract from an event page.
func (p *Parser) ParseEvent(html string) confidx.EventPage {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return confidx.EventPage{}
	}

	return confidx.EventPage{
		Title:    firstText(doc, "div.maincardBody"),
		Type:     firstText(doc, "div.pull-right.maincardHeader.maincardType"),
		Abstract: firstText(doc, "div.abstractContainer"),
	}
}

// ParseSpeaker extracts the name, affiliation and bio from a speaker page.
// The bio is the first div following the name heading.
func (p *Parser) ParseSpeaker(html string) confidx.SpeakerPage {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return confidx.SpeakerPage{}
	}

	return confidx.SpeakerPage{
		Name: firstText(doc, "h3"),
		Org:  firstText(doc, "h4"),
		Bio:  strings.TrimSpace(doc.Find("h3").First().NextAllFiltered("div").First().Text()),
	}
}

func firstText(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
