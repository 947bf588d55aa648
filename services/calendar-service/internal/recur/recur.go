// Package recur expands a repeating appointment into its concrete
// occurrence dates using calendar arithmetic, not fixed-duration
// arithmetic: monthly series respect variable month lengths and
// yearly series respect leap years.
package recur

import (
	"errors"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/keys"
)

type Frequency string

const (
	Once     Frequency = "once"
	Daily    Frequency = "daily"
	Weekly   Frequency = "weekly"
	Biweekly Frequency = "biweekly"
	Weekdays Frequency = "weekdays"
	Monthly  Frequency = "monthly"
	Yearly   Frequency = "yearly"
)

var ErrInvalidFrequency = errors.New("unrecognized repeat frequency")

// ParseFrequency validates a stored frequency token. The empty string
// is accepted as the non-repeating sentinel and maps to Once.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case "", Once:
		return Once, nil
	case Daily, Weekly, Biweekly, Weekdays, Monthly, Yearly:
		return Frequency(s), nil
	}
	return "", ErrInvalidFrequency
}

// IsRepeating reports whether a frequency token plus repeat count
// describe a repeating series. Unrecognized tokens do not repeat.
func IsRepeating(freq string, times int) bool {
	f, err := ParseFrequency(freq)
	if err != nil {
		return false
	}
	return f != Once && times > 1
}

// Expander walks the occurrences of one series. It is cheap to build;
// callers construct a fresh one per appointment and never share them.
type Expander struct {
	freq    Frequency
	current time.Time
	valid   bool
}

func NewExpander(anchor time.Time, freq string) *Expander {
	f, err := ParseFrequency(freq)
	if err != nil {
		return &Expander{valid: false}
	}
	return &Expander{freq: f, current: anchor, valid: true}
}

// Repeating reports whether the expander will produce more than the
// anchor occurrence.
func (e *Expander) Repeating() bool {
	return e.valid && e.freq != Once
}

// Current returns the occurrence for the current step. ok is false
// when the step has no valid occurrence (for example a weekday series
// anchored on a weekend); the caller consumes the step and moves on.
func (e *Expander) Current() (time.Time, bool) {
	if !e.valid {
		return time.Time{}, false
	}
	if e.freq == Weekdays && isWeekend(e.current) {
		return time.Time{}, false
	}
	return e.current, true
}

// Next advances the expander one step.
func (e *Expander) Next() {
	if !e.valid {
		return
	}
	switch e.freq {
	case Daily:
		e.current = e.current.AddDate(0, 0, 1)
	case Weekly:
		e.current = e.current.AddDate(0, 0, 7)
	case Biweekly:
		e.current = e.current.AddDate(0, 0, 14)
	case Weekdays:
		e.current = nextWeekday(e.current)
	case Monthly:
		e.current = addMonthsClamped(e.current, 1)
	case Yearly:
		e.current = addMonthsClamped(e.current, 12)
	}
}

// Expand materializes up to times occurrences of a series, dropping
// occurrences whose day key is in skip (the skip still consumes a
// step, so later occurrences do not shift) and stopping at the first
// occurrence past cutoffYear. Non-repeating and unrecognized series
// expand to nothing.
func Expand(anchor time.Time, freq string, times int, skip map[int]bool, cutoffYear int) []time.Time {
	e := NewExpander(anchor, freq)
	if times <= 1 || !e.Repeating() {
		return nil
	}

	var out []time.Time
	for i := 0; i < times; i++ {
		cur, ok := e.Current()
		if !ok {
			e.Next()
			continue
		}
		if cur.Year() > cutoffYear {
			break
		}
		if !skip[keys.KeyFor(cur)] {
			out = append(out, cur)
		}
		e.Next()
	}
	return out
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func nextWeekday(t time.Time) time.Time {
	t = t.AddDate(0, 0, 1)
	for isWeekend(t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// addMonthsClamped advances by whole months, clamping the day of
// month to the target month's length (Jan 31 + 1 month = Feb 28/29).
// time.AddDate would normalize the overflow into March instead.
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	m += time.Month(months)
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
