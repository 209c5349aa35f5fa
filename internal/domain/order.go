package domain

import "math/rand"

// DefaultOrderAttempts bounds the randomized search in OrderAvoidingAdjacent.
const DefaultOrderAttempts = 1000

// OrderAvoidingAdjacent reorders entries to minimize neighboring
// same-affiliation starts. Up to maxAttempts times it shuffles the input with
// rng and runs a greedy single pass (see greedyOrder); each candidate is
// scored with CountAdjacentConflicts and the best seen so far is kept. The
// search stops early once a zero-conflict order is found.
//
// The best order and its residual conflict count are returned; a nonzero
// count is a best-effort outcome, not an error. Results are deterministic for
// a given rng state and budget. Each attempt consumes further rng draws
// rather than reseeding, so callers needing per-call reproducibility must
// supply a freshly seeded rng.
func OrderAvoidingAdjacent(entries []Entry, maxAttempts int, rng *rand.Rand) ([]Entry, int) {
	if len(entries) <= 1 {
		return append([]Entry(nil), entries...), 0
	}

	best := append([]Entry(nil), entries...)
	bestConflicts := CountAdjacentConflicts(best)

	for attempt := 0; attempt < maxAttempts && bestConflicts > 0; attempt++ {
		shuffled := append([]Entry(nil), entries...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		candidate := greedyOrder(shuffled)
		if conflicts := CountAdjacentConflicts(candidate); conflicts < bestConflicts {
			best = candidate
			bestConflicts = conflicts
		}
	}

	return best, bestConflicts
}

// greedyOrder places the first element and then repeatedly scans the pool for
// the first entry that does not share an affiliation with the last placed
// one. When every remaining entry conflicts, the first is placed anyway,
// accepting one conflict.
func greedyOrder(entries []Entry) []Entry {
	if len(entries) <= 1 {
		return entries
	}

	pool := append([]Entry(nil), entries...)
	result := make([]Entry, 0, len(pool))
	result = append(result, pool[0])
	pool = pool[1:]

	for len(pool) > 0 {
		picked := 0
		for i, e := range pool {
			if !HasAffiliationOverlap(result[len(result)-1], e) {
				picked = i
				break
			}
		}
		result = append(result, pool[picked])
		pool = append(pool[:picked], pool[picked+1:]...)
	}

	return result
}

// ShuffleEntries returns a plain random permutation of entries. Used when a
// class disables affiliation splitting.
func ShuffleEntries(entries []Entry, rng *rand.Rand) []Entry {
	out := append([]Entry(nil), entries...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
