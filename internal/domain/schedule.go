package domain

import (
	"fmt"
	"time"
)

// Accepted start-time layouts. JOY configs written by hand sometimes use a
// semicolon as the separator, so both variants are accepted.
var startTimeLayouts = []string{"15:04", "15:04:05", "15;04", "15;04;05"}

// ParseStartTime parses a wall-clock start time string.
func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &OpError{
		Op:   "schedule.parse_time",
		Kind: KindInvalidTime,
		Err:  fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s),
	}
}

// FormatStartTime renders a wall-clock time as "HH:MM:SS".
func FormatStartTime(t time.Time) string {
	return t.Format("15:04:05")
}

// Assign emits one StartlistEntry per input entry, in order: the i-th entry
// (0-based) gets startNumber+i and startTime plus i*interval minutes. Pure:
// output length always equals input length and no state is carried between
// calls.
func Assign(ordered []Entry, startTime string, startNumber, interval int) ([]StartlistEntry, error) {
	base, err := ParseStartTime(startTime)
	if err != nil {
		return nil, err
	}

	out := make([]StartlistEntry, 0, len(ordered))
	for i, e := range ordered {
		t := base.Add(time.Duration(i*interval) * time.Minute)
		out = append(out, StartlistEntry{
			ClassName:     e.ClassName,
			StartNumber:   startNumber + i,
			Name1:         e.Name1,
			Name2:         e.Name2,
			Affiliation:   e.Affiliation,
			StartTime:     FormatStartTime(t),
			CardNumber:    e.CardNumber,
			IsRental:      e.IsRental,
			JOANumber:     e.JOANumber,
			Gender:        e.Gender,
			OriginalClass: e.OriginalClass,
		})
	}
	return out, nil
}
