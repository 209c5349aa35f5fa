package ports

import (
	"context"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

// RankingSource supplies the rank table for one base class (e.g. "M21").
// Implementations return an empty (possibly nil) table when no ranking is
// available; that is not an error.
type RankingSource interface {
	FetchClassRankings(ctx context.Context, baseClass string) (domain.Rankings, error)
}
