package dictcom

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/dictionary-bot/internal/provider"
)

// Selectors locate the structured fields on a word page. The class names
// are generated by the site's build and drift over time.
type Selectors struct {
	// Section is a definition block; PartOfSpeech and Definition are
	// looked up inside it.
	Section      string
	PartOfSpeech string
	Definition   string
	Example      string
	Etymology    string
	UsageNote    string
}

// DefaultSelectors match the current dictionary.com markup.
var DefaultSelectors = Selectors{
	Section:      `div[data-type="word-definitions"] .e1q3nk1v3`,
	PartOfSpeech: ".luna-pos",
	Definition:   ".e1q3nk1v4",
	Example:      ".e1q3nk1v6",
	Etymology:    ".e1cc33ff0",
	UsageNote:    ".e1ninw8k0",
}

// ParseEntry fetches the page for word and runs the selector pass over it.
func (p *Provider) ParseEntry(ctx context.Context, word string) (*provider.PageResult, error) {
	body, err := p.fetch(ctx, word)
	if err != nil {
		return nil, err
	}

	result, err := Parse(bytes.NewReader(body), word, p.selectors)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "dictcom structured pass",
		slog.String("word", word),
		slog.Int("definitions", len(result.Definitions)),
		slog.Int("examples", len(result.Examples)),
		slog.Int("usage_notes", len(result.UsageNotes)),
	)

	return result, nil
}

// Parse extracts definitions, examples, etymology and usage notes from page
// markup. Definitions are prefixed with "(pos) " when their block carries a
// part-of-speech label. Examples that do not mention word are dropped.
func Parse(r io.Reader, word string, sel Selectors) (*provider.PageResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("dictcom: parse html: %w", err)
	}

	result := &provider.PageResult{
		Definitions: []string{},
		Examples:    []string{},
		UsageNotes:  []string{},
	}

	doc.Find(sel.Section).Each(func(_ int, section *goquery.Selection) {
		pos := cleanText(section.Find(sel.PartOfSpeech).First().Text())
		section.Find(sel.Definition).Each(func(_ int, def *goquery.Selection) {
			text := cleanText(def.Text())
			if text == "" {
				return
			}
			if pos != "" {
				text = "(" + pos + ") " + text
			}
			result.Definitions = append(result.Definitions, text)
		})
	})

	needle := strings.ToLower(word)
	doc.Find(sel.Example).Each(func(_ int, ex *goquery.Selection) {
		text := cleanText(ex.Text())
		if text != "" && strings.Contains(strings.ToLower(text), needle) {
			result.Examples = append(result.Examples, text)
		}
	})

	result.Etymology = cleanText(doc.Find(sel.Etymology).First().Text())

	doc.Find(sel.UsageNote).Each(func(_ int, note *goquery.Selection) {
		if text := cleanText(note.Text()); text != "" {
			result.UsageNotes = append(result.UsageNotes, text)
		}
	})

	return result, nil
}

// cleanText trims s and collapses runs of whitespace left by markup indentation.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
