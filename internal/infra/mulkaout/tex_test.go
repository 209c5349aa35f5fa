package mulkaout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

func texConfig(language string) domain.EventConfig {
	return domain.EventConfig{
		OutputFolder:    "SpringCup",
		CompetitionName: "Spring Cup 2026",
		Language:        language,
		Lanes: []domain.LaneConfig{
			{Name: "Lane 2", Classes: []string{"W21A"}},
			{Name: "Lane 1", Classes: []string{"M21A"}},
		},
	}
}

func TestWritePublicStartlistTeX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Public_Startlist.tex")
	if err := New().WritePublicStartlistTeX(sampleStartlist(), path, texConfig("en")); err != nil {
		t.Fatalf("WritePublicStartlistTeX: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	doc := string(raw)

	for _, want := range []string{
		`\documentclass[a4paper,10pt]{ltjsarticle}`,
		`\usepackage{longtable}`,
		`\fancyhead[C]{Spring Cup 2026 - Startlist}`,
		`\section*{Lane 1}`,
		`\section*{Lane 2}`,
		`\subsection*{M21A1 (2 entries)}`,
		`No. & Time & Name & Affiliation & Card \\`,
		`101 & 11:02:00 & 鈴木 花子 & - & (rental) \\`,
		`\end{document}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}

	// Split class M21A1 belongs to the lane configured with M21A, so Lane 1
	// must come before Lane 2 even though config declares them reversed.
	if strings.Index(doc, `\section*{Lane 1}`) > strings.Index(doc, `\section*{Lane 2}`) {
		t.Error("lanes not in natural order")
	}
	if strings.Contains(doc, `luatexja-ruby`) {
		t.Error("public startlist should not load the ruby package")
	}
}

func TestWritePublicStartlistTeXJapaneseLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Public_Startlist.tex")
	if err := New().WritePublicStartlistTeX(sampleStartlist(), path, texConfig("ja")); err != nil {
		t.Fatalf("WritePublicStartlistTeX: %v", err)
	}

	raw, _ := os.ReadFile(path)
	doc := string(raw)
	if !strings.Contains(doc, `No. & 時刻 & 氏名 & 所属 & カード \\`) {
		t.Error("japanese column labels missing")
	}
	if !strings.Contains(doc, "レンタル") {
		t.Error("japanese rental label missing")
	}
}

func TestWriteRoleStartlistTeX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Role_Startlist.tex")
	if err := New().WriteRoleStartlistTeX(sampleStartlist(), path, texConfig("en")); err != nil {
		t.Fatalf("WriteRoleStartlistTeX: %v", err)
	}

	raw, _ := os.ReadFile(path)
	doc := string(raw)

	for _, want := range []string{
		`\usepackage{luatexja-ruby}`,
		`役員用スタートリスト`,
		`\ruby{山田 太郎}{やまだ たろう}`,
		`\subsection*{M21A1 (2名)}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestEscapeLatex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"A&B", `A\&B`},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`a\b`, `a\textbackslash{}b`},
		{"x^2", `x\textasciicircum{}2`},
	}
	for _, tt := range tests {
		if got := escapeLatex(tt.in); got != tt.want {
			t.Errorf("escapeLatex(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLaneForClass(t *testing.T) {
	lanes := texConfig("en").Lanes

	tests := []struct {
		class string
		want  string
	}{
		{"M21A", "Lane 1"},
		{"M21A1", "Lane 1"}, // split class matches by prefix
		{"W21A", "Lane 2"},
		{"M35A", ""},
	}
	for _, tt := range tests {
		if got := laneForClass(tt.class, lanes); got != tt.want {
			t.Errorf("laneForClass(%q) = %q, want %q", tt.class, got, tt.want)
		}
	}
}

func TestGroupForTypesettingUnassignedClass(t *testing.T) {
	startlist := []domain.StartlistEntry{
		{ClassName: "M35A", StartNumber: 1, StartTime: "10:00:00"},
	}
	sections := groupForTypesetting(startlist, texConfig("en").Lanes)
	if len(sections) != 1 || sections[0].name != "Other" {
		t.Fatalf("sections = %+v, want single Other section", sections)
	}
}
