// Package joaranking fetches competitor rankings from the JOA ranking pages
// on japan-o-entry.com. Pages are plain HTML tables, 50 competitors per page.
package joaranking

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

// Ranking index pages per base class. Extend as more classes get official
// rankings.
var defaultRankingURLs = map[string]string{
	"M21": "https://japan-o-entry.com/ranking/ranking/ranking_index/5/39",
	"W21": "https://japan-o-entry.com/ranking/ranking/ranking_index/5/40",
	"M20": "https://japan-o-entry.com/ranking/ranking/ranking_index/5/41",
	"W20": "https://japan-o-entry.com/ranking/ranking/ranking_index/5/42",
}

const rowsPerRankingPage = 50

type Fetcher struct {
	client    *http.Client
	cfg       ClientConfig
	baseURLs  map[string]string
	maxRank   int
	pageDelay time.Duration
	log       zerolog.Logger
}

type Option func(*Fetcher)

// WithBaseURLs replaces the ranking page URLs, keyed by base class.
func WithBaseURLs(urls map[string]string) Option {
	return func(f *Fetcher) { f.baseURLs = urls }
}

// WithMaxRank caps how deep the ranking is fetched (default 1000).
func WithMaxRank(maxRank int) Option {
	return func(f *Fetcher) { f.maxRank = maxRank }
}

// WithPageDelay sets the pause between page fetches. Zero disables it; the
// default keeps load on the JOA server polite.
func WithPageDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.pageDelay = d }
}

func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) { f.client = client }
}

func WithClientConfig(cfg ClientConfig) Option {
	return func(f *Fetcher) {
		f.cfg = cfg
		f.client = newHTTPClient(cfg)
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

func New(opts ...Option) *Fetcher {
	cfg := DefaultClientConfig()
	f := &Fetcher{
		client:    newHTTPClient(cfg),
		cfg:       cfg,
		baseURLs:  defaultRankingURLs,
		maxRank:   1000,
		pageDelay: 500 * time.Millisecond,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.RankingSource = (*Fetcher)(nil)

// FetchClassRankings downloads the ranking pages for one base class and
// returns normalized-name -> rank. A class without a configured URL and pages
// that fail to download both degrade to a partial (possibly empty) table;
// only context cancellation aborts the fetch.
func (f *Fetcher) FetchClassRankings(ctx context.Context, baseClass string) (domain.Rankings, error) {
	base, ok := f.baseURLs[baseClass]
	if !ok {
		f.log.Warn().Str("class", baseClass).Msg("no ranking URL configured for class")
		return domain.Rankings{}, nil
	}

	pages := (f.maxRank + rowsPerRankingPage - 1) / rowsPerRankingPage
	rankings := domain.Rankings{}

	for page := 0; page < pages; page++ {
		url := base
		if page > 0 {
			url = fmt.Sprintf("%s/%d", base, page)
		}

		body, err := f.fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return rankings, ctx.Err()
			}
			f.log.Warn().Str("url", url).Err(err).Msg("ranking page fetch failed, skipping")
			continue
		}

		for _, row := range extractRankingRows(body) {
			if row.Rank > f.maxRank {
				continue
			}
			if name := domain.NormalizeName(row.Name); name != "" {
				rankings[name] = row.Rank
			}
		}

		if f.pageDelay > 0 && page < pages-1 {
			select {
			case <-ctx.Done():
				return rankings, ctx.Err()
			case <-time.After(f.pageDelay):
			}
		}
	}

	f.log.Info().Str("class", baseClass).Int("ranked", len(rankings)).Msg("rankings fetched")
	return rankings, nil
}

// fetch downloads one URL with the configured retry policy.
func (f *Fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < f.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(f.cfg.RetryWait):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, &domain.OpError{Op: "joaranking.fetch", Kind: domain.KindFetch, Err: err}
		}
		req.Header.Set("User-Agent", f.cfg.UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("unexpected status %d", resp.StatusCode)
			continue
		}

		return body, nil
	}

	return nil, &domain.OpError{
		Op:   "joaranking.fetch",
		Kind: domain.KindFetch,
		Err:  fmt.Errorf("%w: %s: %v", domain.ErrFetch, url, lastErr),
	}
}
