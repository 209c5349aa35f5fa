package mulkaout

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
)

// texLabels holds the language-dependent strings of the public startlist.
type texLabels struct {
	startlist   string
	entries     string
	no          string
	time        string
	name        string
	affiliation string
	card        string
	rental      string
}

var texLabelSets = map[string]texLabels{
	"en": {
		startlist:   "Startlist",
		entries:     "entries",
		no:          "No.",
		time:        "Time",
		name:        "Name",
		affiliation: "Affiliation",
		card:        "Card",
		rental:      "(rental)",
	},
	"ja": {
		startlist:   "スタートリスト",
		entries:     "名",
		no:          "No.",
		time:        "時刻",
		name:        "氏名",
		affiliation: "所属",
		card:        "カード",
		rental:      "レンタル",
	},
}

func labelsFor(language string) texLabels {
	if l, ok := texLabelSets[language]; ok {
		return l
	}
	return texLabelSets["en"]
}

var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

func escapeLatex(text string) string {
	return latexReplacer.Replace(text)
}

// laneForClass maps a class to its lane. Split classes (M21A1) match their
// configured base class (M21A) by prefix.
func laneForClass(className string, lanes []domain.LaneConfig) string {
	for _, lane := range lanes {
		for _, cls := range lane.Classes {
			if className == cls || strings.HasPrefix(className, cls) {
				return lane.Name
			}
		}
	}
	return ""
}

// laneSection is one lane's slice of the startlist, classes sorted by name
// and entries sorted by start number.
type laneSection struct {
	name    string
	classes []classSection
}

type classSection struct {
	name    string
	entries []domain.StartlistEntry
}

// groupForTypesetting arranges the startlist lane by lane, naturally sorted
// (Lane 1 before Lane 10), classes alphabetically within a lane and entries by
// start number. Entries whose class matches no lane collect under "Other".
func groupForTypesetting(startlist []domain.StartlistEntry, lanes []domain.LaneConfig) []laneSection {
	byLane := make(map[string]map[string][]domain.StartlistEntry)
	for _, e := range startlist {
		laneName := laneForClass(e.ClassName, lanes)
		if laneName == "" {
			laneName = "Other"
		}
		if byLane[laneName] == nil {
			byLane[laneName] = make(map[string][]domain.StartlistEntry)
		}
		byLane[laneName][e.ClassName] = append(byLane[laneName][e.ClassName], e)
	}

	laneNames := make([]string, 0, len(byLane))
	for name := range byLane {
		laneNames = append(laneNames, name)
	}
	sort.Slice(laneNames, func(i, j int) bool {
		ni, nj := laneSortKey(laneNames[i]), laneSortKey(laneNames[j])
		if ni != nj {
			return ni < nj
		}
		return laneNames[i] < laneNames[j]
	})

	sections := make([]laneSection, 0, len(laneNames))
	for _, laneName := range laneNames {
		classNames := make([]string, 0, len(byLane[laneName]))
		for name := range byLane[laneName] {
			classNames = append(classNames, name)
		}
		sort.Strings(classNames)

		sec := laneSection{name: laneName}
		for _, className := range classNames {
			entries := byLane[laneName][className]
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].StartNumber < entries[j].StartNumber
			})
			sec.classes = append(sec.classes, classSection{name: className, entries: entries})
		}
		sections = append(sections, sec)
	}
	return sections
}

// laneSortKey extracts the digits of a lane name for natural ordering. Names
// without digits sort last.
func laneSortKey(name string) int {
	n, found := 0, false
	for _, r := range name {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			found = true
		}
	}
	if !found {
		return 999
	}
	return n
}

// WritePublicStartlistTeX writes the printable startlist for public display,
// one section per lane and one longtable per class, in the configured
// language.
func (w *Writer) WritePublicStartlistTeX(startlist []domain.StartlistEntry, path string, cfg domain.EventConfig) error {
	labels := labelsFor(cfg.Language)

	var b strings.Builder
	writeTexPreamble(&b, false, fmt.Sprintf("%s - %s", escapeLatex(cfg.CompetitionName), labels.startlist))
	fmt.Fprintf(&b, "\\section*{%s %s}\n\n", escapeLatex(cfg.OutputFolder), labels.startlist)

	for _, lane := range groupForTypesetting(startlist, cfg.Lanes) {
		fmt.Fprintf(&b, "\\section*{%s}\n\n", escapeLatex(lane.name))

		for _, cls := range lane.classes {
			fmt.Fprintf(&b, "\\subsection*{%s (%d %s)}\n\n", escapeLatex(cls.name), len(cls.entries), labels.entries)

			b.WriteString("\\begin{longtable}{rllll}\n\\toprule\n")
			fmt.Fprintf(&b, "%s & %s & %s & %s & %s \\\\\n", labels.no, labels.time, labels.name, labels.affiliation, labels.card)
			b.WriteString("\\midrule\n\\endhead\n")

			for _, e := range cls.entries {
				card := e.CardNumber
				if e.IsRental || card == "" {
					card = labels.rental
				}
				fmt.Fprintf(&b, "%d & %s & %s & %s & %s \\\\\n",
					e.StartNumber,
					e.StartTime,
					escapeLatex(e.Name1),
					escapeLatex(affiliationOrDash(e.Affiliation)),
					card,
				)
			}

			b.WriteString("\\bottomrule\n\\end{longtable}\n\n")
		}
	}

	b.WriteString("\\end{document}\n")
	return w.writeTexFile("mulkaout.write_public_tex", path, b.String())
}

// WriteRoleStartlistTeX writes the staff startlist with furigana: kanji names
// carry their reading via \ruby. Always in Japanese.
func (w *Writer) WriteRoleStartlistTeX(startlist []domain.StartlistEntry, path string, cfg domain.EventConfig) error {
	var b strings.Builder
	writeTexPreamble(&b, true, fmt.Sprintf("%s - 役員用スタートリスト", escapeLatex(cfg.CompetitionName)))
	fmt.Fprintf(&b, "\\section*{%s 役員用スタートリスト}\n\n", escapeLatex(cfg.OutputFolder))

	for _, lane := range groupForTypesetting(startlist, cfg.Lanes) {
		fmt.Fprintf(&b, "\\section*{%s}\n\n", escapeLatex(lane.name))

		for _, cls := range lane.classes {
			fmt.Fprintf(&b, "\\subsection*{%s (%d名)}\n\n", escapeLatex(cls.name), len(cls.entries))

			b.WriteString("\\begin{longtable}{rlp{6cm}ll}\n\\toprule\n")
			b.WriteString("No. & 時刻 & 氏名 & 所属 & カード \\\\\n")
			b.WriteString("\\midrule\n\\endhead\n")

			for _, e := range cls.entries {
				card := e.CardNumber
				if e.IsRental || card == "" {
					card = "レンタル"
				}
				name := escapeLatex(e.Name1)
				if e.Name1 != "" && e.Name2 != "" {
					name = fmt.Sprintf("\\ruby{%s}{%s}", escapeLatex(e.Name1), escapeLatex(e.Name2))
				}
				fmt.Fprintf(&b, "%d & %s & %s & %s & %s \\\\\n",
					e.StartNumber,
					e.StartTime,
					name,
					escapeLatex(affiliationOrDash(e.Affiliation)),
					card,
				)
			}

			b.WriteString("\\bottomrule\n\\end{longtable}\n\n")
		}
	}

	b.WriteString("\\end{document}\n")
	return w.writeTexFile("mulkaout.write_role_tex", path, b.String())
}

// writeTexPreamble emits the LuaLaTeX document head. The ruby flag pulls in
// luatexja-ruby for furigana.
func writeTexPreamble(b *strings.Builder, ruby bool, headline string) {
	b.WriteString("\\documentclass[a4paper,10pt]{ltjsarticle}\n")
	b.WriteString("\\usepackage{geometry}\n")
	b.WriteString("\\usepackage{longtable}\n")
	b.WriteString("\\usepackage{booktabs}\n")
	b.WriteString("\\usepackage{fancyhdr}\n")
	if ruby {
		b.WriteString("\\usepackage{luatexja-ruby}\n")
	}
	b.WriteString("\n\\geometry{margin=2cm}\n\\pagestyle{fancy}\n\\fancyhf{}\n")
	fmt.Fprintf(b, "\\fancyhead[C]{%s}\n", headline)
	b.WriteString("\\fancyfoot[C]{\\thepage}\n")
	b.WriteString("\\setlength{\\headheight}{15pt}\n")
	b.WriteString("\\begin{document}\n\n")
}

func (w *Writer) writeTexFile(op, path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindWrite, Path: path, Err: err}
	}
	w.log.Debug().Str("path", path).Msg("tex written")
	return nil
}
