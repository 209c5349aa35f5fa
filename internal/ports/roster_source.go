package ports

import "github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"

// RosterSource parses an entry list into domain entries. Every returned entry
// carries a non-empty class name.
type RosterSource interface {
	ParseRoster(path string) ([]domain.Entry, error)
}
