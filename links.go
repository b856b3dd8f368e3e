package confidx

import "regexp"

// ID patterns embedded in inline onClick attributes on the schedule pages.
// An event ID is an opaque integer, a speaker ID is an opaque token of
// digits and hyphens.
var (
	eventIDPattern   = regexp.MustCompile(`onClick="showDetail\(([0-9]+)\)"`)
	speakerIDPattern = regexp.MustCompile(`onClick="showSpeaker\('([0-9-]+)'\);"`)
)

// ExtractEventIDs returns the event IDs referenced by the schedule index
// page, in document order of first appearance. Duplicates are preserved.
// Returns an empty slice when the page contains no matches.
func ExtractEventIDs(html string) []string {
	return extractIDs(eventIDPattern, html)
}

// ExtractSpeakerIDs returns the speaker IDs referenced by an event page,
// in document order of first appearance.
func ExtractSpeakerIDs(html string) []string {
	return extractIDs(speakerIDPattern, html)
}

func extractIDs(p *regexp.Regexp, html string) []string {
	matches := p.FindAllStringSubmatch(html, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}
