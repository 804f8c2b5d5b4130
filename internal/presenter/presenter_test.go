package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/dictionary-bot/internal/domain"
)

func sectionNames(doc Document) []string {
	names := make([]string, len(doc.Sections))
	for i, s := range doc.Sections {
		names[i] = s.Name
	}
	return names
}

func TestRender_AllSections(t *testing.T) {
	t.Parallel()

	rec := domain.WordRecord{
		Definitions: []string{"(noun) a procedure to establish quality", "a trial"},
		Examples:    []string{"The test was hard.", "We test often."},
		Etymology:   "From Old French test, 'pot'.",
		UsageNotes:  []string{"Common in schools.", "Also a verb."},
	}

	doc := Render("test", rec)

	assert.Equal(t, "📚 Definition of 'test'", doc.Title)
	assert.Equal(t, ColorBlue, doc.Color)
	assert.Equal(t, "Source: dictionary.com", doc.Footer)
	require.Equal(t, []string{SectionDefinitions, SectionExamples, SectionEtymology, SectionUsageNotes}, sectionNames(doc))

	assert.Equal(t, "1. (noun) a procedure to establish quality\n\n2. a trial", doc.Sections[0].Value)
	assert.Equal(t, "• The test was hard.\n\n• We test often.", doc.Sections[1].Value)
	assert.Equal(t, "From Old French test, 'pot'.", doc.Sections[2].Value)
	assert.Equal(t, "• Common in schools.\n\n• Also a verb.", doc.Sections[3].Value)
}

func TestRender_OnlyDefinitions(t *testing.T) {
	t.Parallel()

	doc := Render("test", domain.WordRecord{Definitions: []string{"a single definition"}})

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, SectionDefinitions, doc.Sections[0].Name)
	assert.Equal(t, "1. a single definition", doc.Sections[0].Value)
	assert.NotEmpty(t, doc.Footer)
}

func TestRender_OmitsEmptySectionsKeepsOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rec  domain.WordRecord
		want []string
	}{
		{
			name: "examples only",
			rec:  domain.WordRecord{Definitions: []string{"d"}, Examples: []string{"e"}},
			want: []string{SectionDefinitions, SectionExamples},
		},
		{
			name: "etymology only",
			rec:  domain.WordRecord{Definitions: []string{"d"}, Etymology: "ety"},
			want: []string{SectionDefinitions, SectionEtymology},
		},
		{
			name: "notes and examples",
			rec:  domain.WordRecord{Definitions: []string{"d"}, Examples: []string{"e"}, UsageNotes: []string{"n"}},
			want: []string{SectionDefinitions, SectionExamples, SectionUsageNotes},
		},
		{
			name: "etymology and notes",
			rec:  domain.WordRecord{Definitions: []string{"d"}, Etymology: "ety", UsageNotes: []string{"n"}},
			want: []string{SectionDefinitions, SectionEtymology, SectionUsageNotes},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sectionNames(Render("test", tt.rec)))
		})
	}
}

func TestRender_EmptyDefinitionsPlaceholder(t *testing.T) {
	t.Parallel()

	doc := Render("nothing", domain.WordRecord{})

	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "No definitions found.", doc.Sections[0].Value)
}

func TestDocument_Text(t *testing.T) {
	t.Parallel()

	doc := Render("test", domain.WordRecord{
		Definitions: []string{"a trial"},
		Etymology:   "Old French",
	})

	want := "📚 Definition of 'test'\n" +
		"\n📖 Definitions\n1. a trial\n" +
		"\n📜 Etymology\nOld French\n" +
		"\nSource: dictionary.com\n"
	assert.Equal(t, want, doc.Text())
}
