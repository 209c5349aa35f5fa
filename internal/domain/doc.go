// Package domain contains the startlist data model and generation engine:
// ranking-based class splitting, conflict-minimizing ordering, and
// cursor-carrying schedule assignment.
//
// The domain is I/O-agnostic: it does not depend on CSV parsing, net/http,
// or the filesystem. Infra/adapters map into/from these types. Randomness is
// always an explicitly passed *rand.Rand so results are reproducible for a
// given seed.
package domain
