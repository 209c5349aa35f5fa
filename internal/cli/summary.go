package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/usecase"
)

type summaryTheme struct {
	title lipgloss.Style
	label lipgloss.Style
	warn  lipgloss.Style
	card  lipgloss.Style
}

func defaultSummaryTheme() summaryTheme {
	return summaryTheme{
		title: lipgloss.NewStyle().Bold(true),
		label: lipgloss.NewStyle().Faint(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		card: lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}

// printSummary renders the post-run report of a generation.
func printSummary(w io.Writer, s usecase.Summary) {
	th := defaultSummaryTheme()
	var b strings.Builder

	b.WriteString(th.title.Render("Startlist generated") + "\n")
	fmt.Fprintf(&b, "%s %s\n", th.label.Render("Output:"), s.OutputDir)
	fmt.Fprintf(&b, "%s %d (%d rental cards)\n", th.label.Render("Entries:"), s.TotalEntries, s.RentalCards)
	fmt.Fprintf(&b, "%s %s\n", th.label.Render("Duration:"), s.EndedAt.Sub(s.StartedAt).Round(time.Millisecond))

	for _, lane := range s.Lanes {
		fmt.Fprintf(&b, "  %-10s %d positions\n", lane.Name, lane.Entries)
	}

	if len(s.SplitClasses) > 0 {
		originals := make([]string, 0, len(s.SplitClasses))
		for name := range s.SplitClasses {
			originals = append(originals, name)
		}
		sort.Strings(originals)
		for _, name := range originals {
			fmt.Fprintf(&b, "  %s -> %s\n", name, strings.Join(s.SplitClasses[name], ", "))
		}
	}

	for _, warn := range s.Warnings {
		b.WriteString(th.warn.Render(fmt.Sprintf("  %s: %d adjacent same-affiliation starts remain", warn.ClassName, warn.Conflicts)) + "\n")
	}

	for _, file := range s.Files {
		fmt.Fprintf(&b, "  %s\n", th.label.Render(file))
	}

	fmt.Fprintln(w, th.card.Render(strings.TrimRight(b.String(), "\n")))
}
