package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

// SplitByRanking partitions entries into splitCount groups.
//
// Ranked entries (rank lookup succeeds) are sorted ascending by rank, ties
// broken by input order, and dealt round-robin: the i-th ranked entry
// (1-based) goes to group (i-1) mod splitCount, spreading top competitors
// across groups. Unranked entries are shuffled with the supplied rng and then
// greedily placed into whichever group is currently smallest (lowest index on
// ties) to balance sizes.
//
// The concatenation of the returned groups always equals the input as a
// multiset; groups may be empty.
func SplitByRanking(entries []Entry, splitCount int, rankings Rankings, rng *rand.Rand) ([][]Entry, error) {
	if splitCount < 1 {
		return nil, &OpError{
			Op:   "split.by_ranking",
			Kind: KindInvalidSplit,
			Err:  fmt.Errorf("%w: %d", ErrInvalidSplitCount, splitCount),
		}
	}

	type rankedEntry struct {
		rank  int
		entry Entry
	}
	var ranked []rankedEntry
	var unranked []Entry
	for _, e := range entries {
		if rank, ok := rankings.LookupEntry(e); ok {
			ranked = append(ranked, rankedEntry{rank: rank, entry: e})
		} else {
			unranked = append(unranked, e)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].rank < ranked[j].rank })

	groups := make([][]Entry, splitCount)
	for i, re := range ranked {
		groups[i%splitCount] = append(groups[i%splitCount], re.entry)
	}

	shuffled := append([]Entry(nil), unranked...)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	for _, e := range shuffled {
		smallest := 0
		for i := 1; i < splitCount; i++ {
			if len(groups[i]) < len(groups[smallest]) {
				smallest = i
			}
		}
		groups[smallest] = append(groups[smallest], e)
	}

	return groups, nil
}

// ApplyClassSplits retags entries of every class that has a split
// configuration: each entry is copied with the split class name
// (class name + SuffixFormat applied to the 1-based group index) and an
// OriginalClass back-reference. Classes without a split configuration pass
// through untouched. Classes are processed in first-seen roster order.
//
// The returned mapping lists the generated split class names per original
// class, for reporting.
func ApplyClassSplits(entries []Entry, splits map[string]SplitConfig, rankings map[string]Rankings, rng *rand.Rand) ([]Entry, map[string][]string, error) {
	names, byClass := GroupByClass(entries)

	var updated []Entry
	mapping := make(map[string][]string)

	for _, className := range names {
		classEntries := byClass[className]

		sc, ok := splits[className]
		if !ok {
			updated = append(updated, classEntries...)
			continue
		}

		groups, err := SplitByRanking(classEntries, sc.Count, rankings[className], rng)
		if err != nil {
			return nil, nil, err
		}

		splitNames := make([]string, 0, sc.Count)
		for g := 1; g <= sc.Count; g++ {
			splitNames = append(splitNames, className+fmt.Sprintf(sc.SuffixFormat, g))
		}
		mapping[className] = splitNames

		for gi, group := range groups {
			for _, e := range group {
				e.ClassName = splitNames[gi]
				e.OriginalClass = className
				updated = append(updated, e)
			}
		}
	}

	return updated, mapping, nil
}
