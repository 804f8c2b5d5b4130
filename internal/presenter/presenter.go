// Package presenter turns a word record into a display document.
package presenter

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
)

// ColorBlue is the theme token of every definition document.
const ColorBlue = 0x3498db

// Section headings, in display order.
const (
	SectionDefinitions = "📖 Definitions"
	SectionExamples    = "💭 Examples"
	SectionEtymology   = "📜 Etymology"
	SectionUsageNotes  = "📝 Usage Notes"
)

const (
	titlePrefix        = "📚 "
	footer             = "Source: dictionary.com"
	noDefinitionsFound = "No definitions found."
)

// Document is a rendered answer: title, theme color, ordered sections and footer.
type Document struct {
	Title    string
	Color    int
	Sections []Section
	Footer   string
}

// Section is one named block of a Document.
type Section struct {
	Name  string
	Value string
}

// Render builds the document for query. It never fails: an empty
// definitions list renders a placeholder.
func Render(query string, rec domain.WordRecord) Document {
	doc := Document{
		Title:  fmt.Sprintf("%sDefinition of '%s'", titlePrefix, query),
		Color:  ColorBlue,
		Footer: footer,
	}

	doc.Sections = append(doc.Sections, Section{
		Name:  SectionDefinitions,
		Value: numbered(rec.Definitions),
	})

	if len(rec.Examples) > 0 {
		doc.Sections = append(doc.Sections, Section{Name: SectionExamples, Value: bulleted(rec.Examples)})
	}
	if rec.Etymology != "" {
		doc.Sections = append(doc.Sections, Section{Name: SectionEtymology, Value: rec.Etymology})
	}
	if len(rec.UsageNotes) > 0 {
		doc.Sections = append(doc.Sections, Section{Name: SectionUsageNotes, Value: bulleted(rec.UsageNotes)})
	}

	return doc
}

// Text renders the document as plain text for terminals.
func (d Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	for _, s := range d.Sections {
		b.WriteString("\n")
		b.WriteString(s.Name)
		b.WriteString("\n")
		b.WriteString(s.Value)
		b.WriteString("\n")
	}
	if d.Footer != "" {
		b.WriteString("\n")
		b.WriteString(d.Footer)
		b.WriteString("\n")
	}
	return b.String()
}

func numbered(items []string) string {
	if len(items) == 0 {
		return noDefinitionsFound
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return strings.Join(lines, "\n\n")
}

func bulleted(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n\n")
}
