package recur

import (
	"testing"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/keys"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func expandDays(t *testing.T, anchor time.Time, freq string, times int, skip map[int]bool, cutoffYear int) []string {
	t.Helper()
	var out []string
	for _, occ := range Expand(anchor, freq, times, skip, cutoffYear) {
		out = append(out, occ.Format("2006-01-02"))
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExpandDaily(t *testing.T) {
	got := expandDays(t, date(2026, time.June, 1), "daily", 3, nil, 2028)
	want := []string{"2026-06-01", "2026-06-02", "2026-06-03"}
	if !equalStrings(got, want) {
		t.Fatalf("daily expansion = %v, want %v", got, want)
	}
}

func TestExpandWeeklyAndBiweekly(t *testing.T) {
	got := expandDays(t, date(2026, time.June, 1), "weekly", 3, nil, 2028)
	want := []string{"2026-06-01", "2026-06-08", "2026-06-15"}
	if !equalStrings(got, want) {
		t.Fatalf("weekly expansion = %v, want %v", got, want)
	}

	got = expandDays(t, date(2026, time.June, 1), "biweekly", 3, nil, 2028)
	want = []string{"2026-06-01", "2026-06-15", "2026-06-29"}
	if !equalStrings(got, want) {
		t.Fatalf("biweekly expansion = %v, want %v", got, want)
	}
}

func TestExpandMonthlyClampsToMonthLength(t *testing.T) {
	got := expandDays(t, date(2026, time.January, 31), "monthly", 4, nil, 2028)
	// Stepping is month-by-month, so the clamp at February carries
	// forward, as calendar-field arithmetic does.
	want := []string{"2026-01-31", "2026-02-28", "2026-03-28", "2026-04-28"}
	if !equalStrings(got, want) {
		t.Fatalf("monthly expansion = %v, want %v", got, want)
	}
}

func TestExpandYearlyRespectsLeapYears(t *testing.T) {
	got := expandDays(t, date(2024, time.February, 29), "yearly", 3, nil, 2030)
	want := []string{"2024-02-29", "2025-02-28", "2026-02-28"}
	if !equalStrings(got, want) {
		t.Fatalf("yearly expansion = %v, want %v", got, want)
	}
}

func TestExpandSkipConsumesStep(t *testing.T) {
	skip := map[int]bool{keys.DayKey(2026, time.June, 2): true}
	got := expandDays(t, date(2026, time.June, 1), "daily", 3, skip, 2028)
	// The skipped day still used up an iteration, so the third
	// occurrence stays on June 3 rather than shifting to June 4.
	want := []string{"2026-06-01", "2026-06-03"}
	if !equalStrings(got, want) {
		t.Fatalf("skip expansion = %v, want %v", got, want)
	}
}

func TestExpandCutoffBoundsRunawaySeries(t *testing.T) {
	got := Expand(date(2026, time.January, 1), "yearly", 10_000, nil, 2028)
	if len(got) != 3 {
		t.Fatalf("expected 3 occurrences within the cutoff, got %d", len(got))
	}
	for _, occ := range got {
		if occ.Year() > 2028 {
			t.Fatalf("occurrence %s past the cutoff year", occ.Format("2006-01-02"))
		}
	}
}

func TestExpandNonRepeating(t *testing.T) {
	if got := Expand(date(2026, time.June, 1), "once", 5, nil, 2028); got != nil {
		t.Fatalf("once series expanded to %v", got)
	}
	if got := Expand(date(2026, time.June, 1), "daily", 1, nil, 2028); got != nil {
		t.Fatalf("times=1 series expanded to %v", got)
	}
	if got := Expand(date(2026, time.June, 1), "fortnightly-ish", 5, nil, 2028); got != nil {
		t.Fatalf("unrecognized frequency expanded to %v", got)
	}
}

func TestExpandWeekdaysSkipsWeekendSteps(t *testing.T) {
	// Anchored on a Saturday: the first step has no valid occurrence
	// but still counts against the repeat total.
	got := expandDays(t, date(2026, time.August, 22), "weekdays", 3, nil, 2028)
	want := []string{"2026-08-24", "2026-08-25"}
	if !equalStrings(got, want) {
		t.Fatalf("weekdays expansion = %v, want %v", got, want)
	}
}

func TestExpanderRestartable(t *testing.T) {
	anchor := date(2026, time.June, 1)
	a := NewExpander(anchor, "weekly")
	a.Next()
	a.Next()

	b := NewExpander(anchor, "weekly")
	cur, ok := b.Current()
	if !ok || !cur.Equal(anchor) {
		t.Fatalf("fresh expander starts at %v, want anchor", cur)
	}
}

func TestParseFrequency(t *testing.T) {
	if f, err := ParseFrequency(""); err != nil || f != Once {
		t.Fatalf("empty token = %q, %v", f, err)
	}
	if _, err := ParseFrequency("hourly"); err == nil {
		t.Fatal("expected error for unrecognized token")
	}
	if IsRepeating("monthly", 1) {
		t.Fatal("times=1 must not repeat")
	}
	if !IsRepeating("monthly", 2) {
		t.Fatal("monthly x2 must repeat")
	}
}
