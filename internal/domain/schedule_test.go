package domain

import (
	"errors"
	"testing"
)

func TestParseStartTime_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"11:00", "11:00:00"},
		{"9:30", "09:30:00"},
		{"11:00:30", "11:00:30"},
		{"11;00", "11:00:00"},
		{"11;00;30", "11:00:30"},
	}

	for _, tt := range tests {
		parsed, err := ParseStartTime(tt.in)
		if err != nil {
			t.Fatalf("ParseStartTime(%q): unexpected error: %v", tt.in, err)
		}
		if got := FormatStartTime(parsed); got != tt.want {
			t.Fatalf("ParseStartTime(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestParseStartTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "noon", "25:00", "11.00", "11:"} {
		_, err := ParseStartTime(in)
		if err == nil {
			t.Fatalf("ParseStartTime(%q): expected error", in)
		}
		if !errors.Is(err, ErrInvalidTimeFormat) {
			t.Fatalf("ParseStartTime(%q): expected ErrInvalidTimeFormat, got %v", in, err)
		}
		if !IsKind(err, KindInvalidTime) {
			t.Fatalf("ParseStartTime(%q): expected KindInvalidTime, got %v", in, err)
		}
	}
}

func TestAssign_Monotonicity(t *testing.T) {
	var entries []Entry
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		entries = append(entries, newEntry("M21A", name, "-"))
	}

	got, err := Assign(entries, "11:00", 100, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("expected %d startlist entries, got %d", len(entries), len(got))
	}

	wantTimes := []string{"11:00:00", "11:02:00", "11:04:00", "11:06:00", "11:08:00"}
	for i, se := range got {
		if se.StartNumber != 100+i {
			t.Fatalf("entry %d: expected number %d, got %d", i, 100+i, se.StartNumber)
		}
		if se.StartTime != wantTimes[i] {
			t.Fatalf("entry %d: expected time %q, got %q", i, wantTimes[i], se.StartTime)
		}
	}
}

func TestAssign_PassThroughFields(t *testing.T) {
	e := Entry{
		ClassName:     "M21A1",
		Name1:         "山田 太郎",
		Name2:         "やまだ たろう",
		Affiliation:   "東大OLK",
		CardNumber:    "2094567",
		JOANumber:     "12-3456",
		IsRental:      true,
		Gender:        "M",
		OriginalClass: "M21A",
	}

	got, err := Assign([]Entry{e}, "10:00", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	se := got[0]
	if se.ClassName != e.ClassName || se.Name1 != e.Name1 || se.Name2 != e.Name2 ||
		se.Affiliation != e.Affiliation || se.CardNumber != e.CardNumber ||
		se.JOANumber != e.JOANumber || !se.IsRental || se.Gender != e.Gender ||
		se.OriginalClass != e.OriginalClass {
		t.Fatalf("fields not passed through: %+v", se)
	}
}

func TestAssign_InvalidTime(t *testing.T) {
	_, err := Assign([]Entry{newEntry("M21A", "a", "-")}, "bogus", 1, 1)
	if !errors.Is(err, ErrInvalidTimeFormat) {
		t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
	}
}

func TestAssign_EmptyInput(t *testing.T) {
	got, err := Assign(nil, "10:00", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d entries", len(got))
	}
}
