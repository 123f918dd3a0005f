package pokedex

import "strings"

// FilterState is the list view's search input: a free-text name query and
// an optional type. The zero value matches everything.
type FilterState struct {
	Query string
	Type  string
}

// WithQuery returns a copy with the query replaced.
func (f FilterState) WithQuery(q string) FilterState {
	f.Query = q
	return f
}

// WithType returns a copy with the type filter replaced.
func (f FilterState) WithType(t string) FilterState {
	f.Type = t
	return f
}

// IsZero reports whether the filter matches every record.
func (f FilterState) IsZero() bool {
	return f.Query == "" && f.Type == ""
}

// Matches reports whether a single record passes the filter: the name
// contains the query case-insensitively, and the type filter is empty or
// listed among the record's types.
func (f FilterState) Matches(s Summary) bool {
	if f.Type != "" && !s.HasType(f.Type) {
		return false
	}
	return strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.Query))
}

// Filter returns the records matching f in their original order. It is
// recomputed from scratch on every call.
func Filter(records []Summary, f FilterState) []Summary {
	if f.IsZero() {
		return records
	}

	out := make([]Summary, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
