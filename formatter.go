package confidx

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// descriptionWidth is the wrap width for description blocks in console
// output.
const descriptionWidth = 70

// FormatDocument renders a single document in the fixed console format
// shared by the docs and find commands. The description is word-wrapped
// and indented by two spaces.
func FormatDocument(doc *Document) string {
	var b strings.Builder
	b.WriteString("url: " + doc.URL + "\n")
	b.WriteString("title: " + doc.Title + "\n")
	b.WriteString("type: " + doc.Type + "\n")
	b.WriteString("subtype: " + doc.Subtype + "\n")
	b.WriteString("org: " + doc.Org + "\n")
	b.WriteString("description:\n")
	b.WriteString(indentBlock(wordwrap.WrapString(doc.Description, descriptionWidth)))
	return b.String()
}

// FormatDocuments renders documents separated by a divider line, with no
// trailing divider after the last document.
func FormatDocuments(docs []*Document) string {
	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		parts = append(parts, FormatDocument(doc))
	}
	return strings.Join(parts, "---\n")
}

func indentBlock(s string) string {
	if s == "" {
		return "\n"
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n") + "\n"
}
