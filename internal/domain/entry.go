package domain

// Entry is a single participant parsed from a JOY entry-list export.
// Entries are read-only inputs to the generation engine: splitting produces
// retagged copies (ClassName updated, OriginalClass set) and never mutates
// the source slice.
type Entry struct {
	ClassName    string
	Name1        string // display name (kanji)
	Name2        string // reading (hiragana/katakana)
	Affiliation  string // raw affiliation string, may be empty or a placeholder
	Affiliations []string
	CardNumber   string
	JOANumber    string
	IsRental     bool
	Gender       string

	// Source position in the entry list, for diagnostics.
	RowNumber         int
	ParticipantNumber int

	// OriginalClass is set only on copies produced by class splitting and
	// points back to the pre-split class name.
	OriginalClass string
}

// StartlistEntry is one scheduled start position. ClassName is the post-split
// class when splitting applied.
type StartlistEntry struct {
	ClassName     string
	StartNumber   int
	Name1         string
	Name2         string
	Affiliation   string
	StartTime     string // "HH:MM:SS"
	CardNumber    string
	IsRental      bool
	JOANumber     string
	Gender        string
	OriginalClass string
}

// GroupByClass groups entries by class name, returning class names in
// first-seen order so downstream processing stays deterministic.
func GroupByClass(entries []Entry) ([]string, map[string][]Entry) {
	var names []string
	byClass := make(map[string][]Entry)
	for _, e := range entries {
		if _, ok := byClass[e.ClassName]; !ok {
			names = append(names, e.ClassName)
		}
		byClass[e.ClassName] = append(byClass[e.ClassName], e)
	}
	return names, byClass
}

// FilterByClass returns the entries tagged with exactly the given class name,
// preserving input order.
func FilterByClass(entries []Entry, className string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.ClassName == className {
			out = append(out, e)
		}
	}
	return out
}
