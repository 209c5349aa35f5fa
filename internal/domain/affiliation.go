package domain

import (
	"regexp"
	"strings"
)

var trailingDigits = regexp.MustCompile(`\d+$`)

// Values that mark "no affiliation" in JOY exports (ASCII hyphen, minus sign,
// horizontal bar).
func isAffiliationPlaceholder(s string) bool {
	switch s {
	case "", "-", "−", "―":
		return true
	}
	return false
}

// AffiliationTokens returns the normalized affiliation tokens used for
// adjacent-conflict checks: the parsed Affiliations list when present,
// otherwise the raw Affiliation field as a single token. Each token has any
// trailing digit run stripped ("東工大OLC1" counts as "東工大OLC") and is
// lowercased. An entry with no usable affiliation yields no tokens.
func AffiliationTokens(e Entry) []string {
	affs := e.Affiliations
	if len(affs) == 0 && !isAffiliationPlaceholder(e.Affiliation) {
		affs = []string{e.Affiliation}
	}

	var out []string
	for _, a := range affs {
		a = strings.TrimSpace(trailingDigits.ReplaceAllString(a, ""))
		if a == "" {
			continue
		}
		out = append(out, strings.ToLower(a))
	}
	return out
}

// HasAffiliationOverlap reports whether two entries share at least one
// normalized affiliation token. Entries without tokens never overlap.
func HasAffiliationOverlap(a, b Entry) bool {
	ta := AffiliationTokens(a)
	tb := AffiliationTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return false
	}

	set := make(map[string]struct{}, len(ta))
	for _, t := range ta {
		set[t] = struct{}{}
	}
	for _, t := range tb {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// CountAdjacentConflicts counts pairs of neighboring entries that share an
// affiliation. This is the score minimized by OrderAvoidingAdjacent.
func CountAdjacentConflicts(entries []Entry) int {
	conflicts := 0
	for i := 0; i+1 < len(entries); i++ {
		if HasAffiliationOverlap(entries[i], entries[i+1]) {
			conflicts++
		}
	}
	return conflicts
}
