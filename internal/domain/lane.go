package domain

import (
	"fmt"
	"math/rand"
	"regexp"
	"time"
)

// Trailing rank/division suffix of a class name: everything from the first
// A/E/S on ("M21A" -> "M21", "W20E1" -> "W20").
var baseClassSuffix = regexp.MustCompile(`[AES].*$`)

// BaseClass strips the rank/division suffix from a class name. Split
// configuration and rankings are keyed by base class.
func BaseClass(className string) string {
	return baseClassSuffix.ReplaceAllString(className, "")
}

// ConflictWarning reports a class whose ordering still had neighboring
// same-affiliation starts after the attempt budget was exhausted. It is
// informational; the best-found order is used regardless.
type ConflictWarning struct {
	ClassName string
	Conflicts int
}

// GenerateLane schedules every class of one lane, in the order given by
// lane.Classes, and returns the lane's startlist.
//
// A single (time, number) cursor starts at the lane's configured values and
// advances strictly forward by the size and interval of each scheduled
// segment; it is never reset mid-lane. Class overrides apply to Interval and
// AffiliationSplit only: the cursor always supplies StartTime and
// StartNumber, overwriting whatever the lane default or an override carries.
//
// A class whose base class (see BaseClass) has a split configuration is first
// partitioned with SplitByRanking using the base class rankings; each
// non-empty group is scheduled in group-index order under its split class
// name. Classes and groups without entries are skipped without advancing the
// cursor.
//
// The rng drives both ordering and splitting and is consumed sequentially;
// concurrent invocations must not share one rng or cursor.
func GenerateLane(entries []Entry, lane LaneConfig, overrides map[string]ClassOverride, splits map[string]SplitConfig, rankings map[string]Rankings, rng *rand.Rand) ([]StartlistEntry, []ConflictWarning, error) {
	cursorTime, err := ParseStartTime(lane.StartTime)
	if err != nil {
		return nil, nil, err
	}
	cursorNumber := lane.StartNumber

	var startlist []StartlistEntry
	var warnings []ConflictWarning

	schedule := func(className string, group []Entry) error {
		cfg := EffectiveFor(className, lane, overrides)
		// Cursor wins over lane defaults and overrides for these two fields.
		cfg.StartTime = FormatStartTime(cursorTime)
		cfg.StartNumber = cursorNumber

		var ordered []Entry
		if cfg.AffiliationSplit {
			var conflicts int
			ordered, conflicts = OrderAvoidingAdjacent(group, DefaultOrderAttempts, rng)
			if conflicts > 0 {
				warnings = append(warnings, ConflictWarning{ClassName: className, Conflicts: conflicts})
			}
		} else {
			ordered = ShuffleEntries(group, rng)
		}

		assigned, err := Assign(ordered, cfg.StartTime, cfg.StartNumber, cfg.Interval)
		if err != nil {
			return err
		}
		startlist = append(startlist, assigned...)

		cursorTime = cursorTime.Add(time.Duration(len(assigned)*cfg.Interval) * time.Minute)
		cursorNumber += len(assigned)
		return nil
	}

	for _, className := range lane.Classes {
		classEntries := FilterByClass(entries, className)
		if len(classEntries) == 0 {
			continue
		}

		sc, ok := splits[BaseClass(className)]
		if !ok {
			if err := schedule(className, classEntries); err != nil {
				return nil, nil, err
			}
			continue
		}

		groups, err := SplitByRanking(classEntries, sc.Count, rankings[BaseClass(className)], rng)
		if err != nil {
			return nil, nil, err
		}

		for gi, group := range groups {
			if len(group) == 0 {
				continue
			}
			splitName := className + fmt.Sprintf(sc.SuffixFormat, gi+1)
			retagged := make([]Entry, len(group))
			for i, e := range group {
				e.ClassName = splitName
				e.OriginalClass = className
				retagged[i] = e
			}
			if err := schedule(splitName, retagged); err != nil {
				return nil, nil, err
			}
		}
	}

	return startlist, warnings, nil
}
