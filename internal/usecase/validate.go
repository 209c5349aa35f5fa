package usecase

import (
	"fmt"
	"sort"

	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/domain"
	"github.com/AtsushiYanaigsawa768/JOY2Mulka/internal/ports"
)

// ValidationReport is a dry-run view of an entry list against a config:
// which classes arrived, how they map onto lanes, and what would be left
// unscheduled.
type ValidationReport struct {
	Entries      int
	ClassCounts  map[string]int
	RentalCards  int
	SplitClasses map[string][]string

	// UnassignedClasses are roster classes no lane would schedule.
	UnassignedClasses []string
	// EmptyLaneClasses are configured lane classes with no matching entries.
	EmptyLaneClasses []string
}

type ValidateInputs struct {
	config ports.ConfigLoader
	roster ports.RosterSource
}

func NewValidateInputs(cl ports.ConfigLoader, rs ports.RosterSource) *ValidateInputs {
	return &ValidateInputs{config: cl, roster: rs}
}

// Execute checks that the entry list and config fit together without
// generating anything. The startlist a real run would produce is complete
// exactly when both unassigned and empty class lists come back empty.
func (uc *ValidateInputs) Execute(entryListPath, configPath string) (ValidationReport, error) {
	report := ValidationReport{
		ClassCounts:  map[string]int{},
		SplitClasses: map[string][]string{},
	}

	cfg, err := uc.config.LoadEventConfig(configPath)
	if err != nil {
		return report, err
	}

	entries, err := uc.roster.ParseRoster(entryListPath)
	if err != nil {
		return report, err
	}

	report.Entries = len(entries)
	for _, e := range entries {
		report.ClassCounts[e.ClassName]++
		if e.IsRental {
			report.RentalCards++
		}
	}

	laneClasses := make(map[string]bool)
	for _, lane := range cfg.Lanes {
		for _, className := range lane.Classes {
			laneClasses[className] = true
		}
	}

	// Split configs rename classes before lane processing, so a roster class
	// with a split is scheduled through its generated names.
	scheduled := make(map[string]bool)
	for rosterClass := range report.ClassCounts {
		names := scheduledClassNames(rosterClass, cfg.Splits)
		if len(names) > 1 {
			report.SplitClasses[rosterClass] = names
		}

		covered := true
		for _, name := range names {
			scheduled[name] = true
			if !laneClasses[name] {
				covered = false
			}
		}
		if !covered {
			report.UnassignedClasses = append(report.UnassignedClasses, rosterClass)
		}
	}
	sort.Strings(report.UnassignedClasses)

	for className := range laneClasses {
		if !scheduled[className] {
			report.EmptyLaneClasses = append(report.EmptyLaneClasses, className)
		}
	}
	sort.Strings(report.EmptyLaneClasses)

	return report, nil
}

// scheduledClassNames returns the class names an entry class appears under
// after splitting: the generated split names when a split is configured, the
// class itself otherwise.
func scheduledClassNames(className string, splits map[string]domain.SplitConfig) []string {
	sc, ok := splits[className]
	if !ok {
		return []string{className}
	}
	names := make([]string, 0, sc.Count)
	for g := 1; g <= sc.Count; g++ {
		names = append(names, className+fmt.Sprintf(sc.SuffixFormat, g))
	}
	return names
}
