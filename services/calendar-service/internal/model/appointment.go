package model

import (
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/recur"
)

// Appointment is the authoritative calendar record. Its ID packs the
// anchor date plus a per-day sequence number (see the keys package);
// the ID is assigned by the model's allocator, never by callers.
type Appointment struct {
	ID        int
	Date      time.Time
	Duration  int // minutes; 0 for untimed notes
	Text      string
	Category  string
	Frequency string
	Times     int   // repeat count; <=1 means non-repeating
	SkipList  []int // day keys of cancelled occurrences
	Todo      bool
	NextTodo  *time.Time
	Color     string
	Deleted   bool // soft-delete marker, used in no-overwrite sync mode
	Private   bool
	UID       string // externally-stable identifier, if any
	URL       string // remote object URL, preferred over UID when set
	CreatedAt time.Time
}

// Repeats reports whether the record describes a repeating series.
func (a *Appointment) Repeats() bool {
	return recur.IsRepeating(a.Frequency, a.Times)
}

// IsNote reports whether the appointment is an untimed note: zero
// duration and an anchor time of midnight.
func (a *Appointment) IsNote() bool {
	if a.Duration != 0 {
		return false
	}
	return a.Date.Hour() == 0 && a.Date.Minute() == 0
}

// Skipped reports whether the occurrence on the given day key has
// been removed from the series.
func (a *Appointment) Skipped(dayKey int) bool {
	for _, k := range a.SkipList {
		if k == dayKey {
			return true
		}
	}
	return false
}

// Clone returns a deep copy, so cached and stored records never alias.
func (a *Appointment) Clone() *Appointment {
	cp := *a
	if a.SkipList != nil {
		cp.SkipList = append([]int(nil), a.SkipList...)
	}
	if a.NextTodo != nil {
		nt := *a.NextTodo
		cp.NextTodo = &nt
	}
	return &cp
}

// ChangeAction tags a committed mutation.
type ChangeAction string

const (
	ActionAdd    ChangeAction = "ADD"
	ActionChange ChangeAction = "CHANGE"
	ActionDelete ChangeAction = "DELETE"
)

// ChangeOrigin distinguishes local edits from writes applied on
// behalf of the external sync target, whose echo must not be
// replicated back.
type ChangeOrigin int

const (
	OriginLocal ChangeOrigin = iota
	OriginSync
)

// ObjectType is the closed set of entity kinds a change event can
// describe. Only appointments are replicated today; tasks exist so
// consumers match the union exhaustively instead of type-sniffing.
type ObjectType string

const (
	ObjectAppointment ObjectType = "APPOINTMENT"
	ObjectTask        ObjectType = "TASK"
)

// ChangeEvent is emitted once per committed mutation. The day-index
// rebuild and the sync-log reconciler observe the same stream,
// independently of each other.
type ChangeEvent struct {
	Object ObjectType
	Action ChangeAction
	Origin ChangeOrigin
	Appt   *Appointment
}
