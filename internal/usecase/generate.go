package usecase

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

// GenerateParams are the per-invocation inputs of startlist generation.
type GenerateParams struct {
	EntryListPath string
	ConfigPath    string

	// OutputDir is the base directory; the config's output folder is created
	// underneath it. Empty means the current directory.
	OutputDir string

	// Seed makes generation reproducible. Runs with the same inputs and seed
	// produce identical startlists.
	Seed int64

	// NoRanking skips the ranking lookup so split distribution is random.
	NoRanking bool
}

// LaneResult summarizes one generated lane.
type LaneResult struct {
	Name    string
	Entries int
}

// Summary reports what a generation run produced.
type Summary struct {
	OutputDir    string
	TotalEntries int
	RentalCards  int
	Lanes        []LaneResult
	SplitClasses map[string][]string
	Warnings     []domain.ConflictWarning
	Files        []string
	StartedAt    time.Time
	EndedAt      time.Time
}

type GenerateStartlists struct {
	config   ports.ConfigLoader
	roster   ports.RosterSource
	rankings ports.RankingSource
	writer   ports.StartlistWriter
	log      zerolog.Logger
}

type GenerateOption func(*GenerateStartlists)

func WithGenerateLogger(log zerolog.Logger) GenerateOption {
	return func(uc *GenerateStartlists) { uc.log = log }
}

func NewGenerateStartlists(cl ports.ConfigLoader, rs ports.RosterSource, rk ports.RankingSource, w ports.StartlistWriter, opts ...GenerateOption) *GenerateStartlists {
	uc := &GenerateStartlists{
		config:   cl,
		roster:   rs,
		rankings: rk,
		writer:   w,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the full pipeline: load config, parse the entry list, fetch
// rankings for split classes, apply class splits, schedule every lane, and
// write the output files into <OutputDir>/<config output folder>.
//
// Splitting and each lane run on a fresh random stream seeded with
// params.Seed, so a fixed seed pins the entire startlist and adding a lane
// never perturbs the others. A failed ranking fetch degrades that class to
// random split distribution instead of failing the run.
func (uc *GenerateStartlists) Execute(ctx context.Context, params GenerateParams) (Summary, error) {
	summary := Summary{StartedAt: time.Now(), SplitClasses: map[string][]string{}}

	cfg, err := uc.config.LoadEventConfig(params.ConfigPath)
	if err != nil {
		return summary, err
	}

	entries, err := uc.roster.ParseRoster(params.EntryListPath)
	if err != nil {
		return summary, err
	}
	uc.log.Info().Int("entries", len(entries)).Str("path", params.EntryListPath).Msg("entry list parsed")

	rankings := uc.fetchRankings(ctx, cfg, params.NoRanking)
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	rng := rand.New(rand.NewSource(params.Seed))

	entries, splitMapping, err := domain.ApplyClassSplits(entries, cfg.Splits, rankings, rng)
	if err != nil {
		return summary, err
	}
	summary.SplitClasses = splitMapping
	for original, splitNames := range splitMapping {
		uc.log.Info().Str("class", original).Strs("split_into", splitNames).Msg("class split applied")
	}

	var combined []domain.StartlistEntry
	for _, lane := range cfg.Lanes {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		// Splits were applied up front, so lanes schedule the already-retagged
		// classes; an empty split table keeps GenerateLane from splitting twice.
		laneRng := rand.New(rand.NewSource(params.Seed))
		startlist, warnings, err := domain.GenerateLane(entries, lane, cfg.ClassOverrides, nil, rankings, laneRng)
		if err != nil {
			return summary, err
		}

		for _, w := range warnings {
			uc.log.Warn().
				Str("lane", lane.Name).
				Str("class", w.ClassName).
				Int("conflicts", w.Conflicts).
				Msg("residual adjacent same-affiliation starts")
		}
		summary.Warnings = append(summary.Warnings, warnings...)
		summary.Lanes = append(summary.Lanes, LaneResult{Name: lane.Name, Entries: len(startlist)})
		combined = append(combined, startlist...)

		uc.log.Info().Str("lane", lane.Name).Int("positions", len(startlist)).Msg("lane scheduled")
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].StartTime < combined[j].StartTime
	})

	summary.TotalEntries = len(combined)
	for _, e := range combined {
		if e.IsRental {
			summary.RentalCards++
		}
	}

	outDir := filepath.Join(params.OutputDir, cfg.OutputFolder)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return summary, &domain.OpError{Op: "generate.mkdir", Kind: domain.KindWrite, Path: outDir, Err: err}
	}
	summary.OutputDir = outDir

	outputs := []struct {
		name  string
		write func(string) error
	}{
		{"Startlist.csv", func(p string) error { return uc.writer.WriteStartlistCSV(combined, p) }},
		{"Role_Startlist.csv", func(p string) error { return uc.writer.WriteRoleStartlistCSV(combined, p) }},
		{"Class_Summary.csv", func(p string) error { return uc.writer.WriteClassSummaryCSV(combined, p) }},
		{"Public_Startlist.tex", func(p string) error { return uc.writer.WritePublicStartlistTeX(combined, p, cfg) }},
		{"Role_Startlist.tex", func(p string) error { return uc.writer.WriteRoleStartlistTeX(combined, p, cfg) }},
	}
	for _, out := range outputs {
		path := filepath.Join(outDir, out.name)
		if err := out.write(path); err != nil {
			return summary, err
		}
		summary.Files = append(summary.Files, path)
		uc.log.Info().Str("path", path).Msg("output written")
	}

	summary.EndedAt = time.Now()
	return summary, nil
}

// fetchRankings collects ranking tables for every split class that wants
// ranking-based distribution, keyed by the configured class name. Classes are
// fetched in sorted order so log output is stable.
func (uc *GenerateStartlists) fetchRankings(ctx context.Context, cfg domain.EventConfig, noRanking bool) map[string]domain.Rankings {
	rankings := make(map[string]domain.Rankings)
	if noRanking || uc.rankings == nil {
		return rankings
	}

	classes := make([]string, 0, len(cfg.Splits))
	for className, sc := range cfg.Splits {
		if sc.UseRanking {
			classes = append(classes, className)
		}
	}
	sort.Strings(classes)

	for _, className := range classes {
		table, err := uc.rankings.FetchClassRankings(ctx, domain.BaseClass(className))
		if err != nil {
			uc.log.Warn().Str("class", className).Err(err).Msg("ranking fetch failed, using random distribution")
			continue
		}
		rankings[className] = table
		uc.log.Info().Str("class", className).Int("ranked", len(table)).Msg("rankings loaded")
	}
	return rankings
}
