package domain

// List bounds for a WordRecord.
const (
	MaxDefinitions = 5
	MaxExamples    = 3
	MaxUsageNotes  = 2
)

// WordRecord is the structured result of a word lookup.
type WordRecord struct {
	Definitions []string
	Examples    []string
	Etymology   string
	UsageNotes  []string
}

// NewWordRecord builds a record with every list clipped to its bound.
// The input slices are copied, so later changes to them do not leak in.
func NewWordRecord(definitions, examples []string, etymology string, usageNotes []string) WordRecord {
	return WordRecord{
		Definitions: clip(definitions, MaxDefinitions),
		Examples:    clip(examples, MaxExamples),
		Etymology:   etymology,
		UsageNotes:  clip(usageNotes, MaxUsageNotes),
	}
}

// Valid reports whether the record can be returned to a caller.
// A record without definitions is treated as not found.
func (r WordRecord) Valid() bool {
	return len(r.Definitions) > 0
}

// Clone returns a deep copy of the record.
func (r WordRecord) Clone() WordRecord {
	return WordRecord{
		Definitions: append([]string(nil), r.Definitions...),
		Examples:    append([]string(nil), r.Examples...),
		Etymology:   r.Etymology,
		UsageNotes:  append([]string(nil), r.UsageNotes...),
	}
}

func clip(items []string, limit int) []string {
	if len(items) > limit {
		items = items[:limit]
	}
	return append([]string(nil), items...)
}
