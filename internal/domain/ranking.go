package domain

import (
	"regexp"
	"strings"
)

// Rankings maps a normalized competitor name (see NormalizeName) to a rank,
// where 1 is best. Absence of a name means unranked.
type Rankings map[string]int

var nameWhitespace = regexp.MustCompile(`[\s\x{3000}]+`)

// NormalizeName prepares a competitor name for ranking lookup: every
// whitespace run (including ideographic space) is removed and the result is
// lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(nameWhitespace.ReplaceAllString(name, ""))
}

// LookupEntry resolves an entry's rank by trying the primary display name
// first and the reading second. The second return value is false when the
// entry is unranked.
func (r Rankings) LookupEntry(e Entry) (int, bool) {
	if len(r) == 0 {
		return 0, false
	}
	if rank, ok := r[NormalizeName(e.Name1)]; ok {
		return rank, true
	}
	if rank, ok := r[NormalizeName(e.Name2)]; ok {
		return rank, true
	}
	return 0, false
}
