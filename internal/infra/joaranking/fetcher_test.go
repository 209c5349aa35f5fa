package joaranking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

func rankingHTML(rows ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table><tr><th>順位</th><th>氏名</th></tr>`)
	for _, r := range rows {
		b.WriteString(r)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

func rankingTR(rank int, name string) string {
	return fmt.Sprintf(`<tr><td>%d</td><td>%s</td></tr>`, rank, name)
}

func TestFetchClassRankings(t *testing.T) {
	var requests []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Path)
		switch r.URL.Path {
		case "/ranking/39":
			fmt.Fprint(w, rankingHTML(rankingTR(1, "山田 太郎"), rankingTR(2, "鈴木 花子")))
		case "/ranking/39/1":
			fmt.Fprint(w, rankingHTML(rankingTR(51, "佐藤 次郎")))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := New(
		WithBaseURLs(map[string]string{"M21": srv.URL + "/ranking/39"}),
		WithMaxRank(100),
		WithPageDelay(0),
	)

	got, err := f.FetchClassRankings(context.Background(), "M21")
	if err != nil {
		t.Fatalf("FetchClassRankings: %v", err)
	}

	if len(requests) != 2 {
		t.Fatalf("requests = %v, want 2 pages", requests)
	}
	want := domain.Rankings{
		domain.NormalizeName("山田 太郎"): 1,
		domain.NormalizeName("鈴木 花子"): 2,
		domain.NormalizeName("佐藤 次郎"): 51,
	}
	if len(got) != len(want) {
		t.Fatalf("rankings = %v, want %v", got, want)
	}
	for name, rank := range want {
		if got[name] != rank {
			t.Errorf("rank[%q] = %d, want %d", name, got[name], rank)
		}
	}
}

func TestFetchClassRankingsSetsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		fmt.Fprint(w, rankingHTML(rankingTR(1, "山田 太郎")))
	}))
	defer srv.Close()

	f := New(
		WithBaseURLs(map[string]string{"M21": srv.URL}),
		WithMaxRank(10),
		WithPageDelay(0),
	)
	if _, err := f.FetchClassRankings(context.Background(), "M21"); err != nil {
		t.Fatalf("FetchClassRankings: %v", err)
	}
	if !strings.Contains(ua, "Mozilla/5.0") {
		t.Fatalf("User-Agent = %q, want browser-like string", ua)
	}
}

func TestFetchClassRankingsUnconfiguredClass(t *testing.T) {
	f := New(WithBaseURLs(map[string]string{}), WithPageDelay(0))
	got, err := f.FetchClassRankings(context.Background(), "M35")
	if err != nil {
		t.Fatalf("FetchClassRankings: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("rankings = %v, want empty", got)
	}
}

func TestFetchClassRankingsSkipsFailingPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/1" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, rankingHTML(rankingTR(1, "山田 太郎")))
	}))
	defer srv.Close()

	cfg := DefaultClientConfig()
	cfg.Retries = 1
	cfg.RetryWait = 0
	f := New(
		WithClientConfig(cfg),
		WithBaseURLs(map[string]string{"M21": srv.URL}),
		WithMaxRank(100),
		WithPageDelay(0),
	)

	got, err := f.FetchClassRankings(context.Background(), "M21")
	if err != nil {
		t.Fatalf("FetchClassRankings: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("rankings = %v, want the one page that succeeded", got)
	}
}

func TestFetchClassRankingsCappedByMaxRank(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rankingHTML(rankingTR(10, "山田 太郎"), rankingTR(60, "佐藤 次郎")))
	}))
	defer srv.Close()

	f := New(
		WithBaseURLs(map[string]string{"M21": srv.URL}),
		WithMaxRank(50),
		WithPageDelay(0),
	)
	got, err := f.FetchClassRankings(context.Background(), "M21")
	if err != nil {
		t.Fatalf("FetchClassRankings: %v", err)
	}
	if _, ok := got[domain.NormalizeName("佐藤 次郎")]; ok {
		t.Fatalf("rank 60 should be dropped with max rank 50: %v", got)
	}
	if got[domain.NormalizeName("山田 太郎")] != 10 {
		t.Fatalf("rankings = %v, want 山田太郎 at 10", got)
	}
}

func TestFetchClassRankingsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(
		WithBaseURLs(map[string]string{"M21": "http://127.0.0.1:0"}),
		WithMaxRank(10),
		WithPageDelay(0),
	)
	if _, err := f.FetchClassRankings(ctx, "M21"); err == nil {
		t.Fatal("want context error")
	}
}
