package provider

// PageResult is the structured data pulled from a dictionary page by
// selector-based extraction. Lists are unbounded; callers apply limits.
type PageResult struct {
	Definitions []string
	Examples    []string
	Etymology   string
	UsageNotes  []string
}

// Empty reports whether the page yielded no definitions.
func (r *PageResult) Empty() bool {
	return r == nil || len(r.Definitions) == 0
}
