// Package sync moves committed changes between this process and the
// external replication target: a drain that publishes the pending
// change log to Kafka, and a consumer that applies inbound events
// through the model under the sync origin.
package sync

import (
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

// Event is the wire format of one replicated change.
type Event struct {
	UID    string  `json:"uid"`
	Object string  `json:"object"`
	Action string  `json:"action"`
	Appt   *Record `json:"appointment,omitempty"`
}

// Record is the appointment snapshot carried on add and change events.
// Deletes carry no snapshot; the UID identifies the remote copy.
type Record struct {
	ID        int        `json:"id"`
	Date      time.Time  `json:"date"`
	Duration  int        `json:"duration"`
	Text      string     `json:"text"`
	Category  string     `json:"category,omitempty"`
	Frequency string     `json:"frequency,omitempty"`
	Times     int        `json:"times,omitempty"`
	SkipList  []int      `json:"skip_list,omitempty"`
	Todo      bool       `json:"todo,omitempty"`
	NextTodo  *time.Time `json:"next_todo,omitempty"`
	Color     string     `json:"color,omitempty"`
	Private   bool       `json:"private,omitempty"`
	UID       string     `json:"uid,omitempty"`
	URL       string     `json:"url,omitempty"`
}

func toRecord(a *model.Appointment) *Record {
	return &Record{
		ID:        a.ID,
		Date:      a.Date,
		Duration:  a.Duration,
		Text:      a.Text,
		Category:  a.Category,
		Frequency: a.Frequency,
		Times:     a.Times,
		SkipList:  append([]int(nil), a.SkipList...),
		Todo:      a.Todo,
		NextTodo:  a.NextTodo,
		Color:     a.Color,
		Private:   a.Private,
		UID:       a.UID,
		URL:       a.URL,
	}
}

func (r *Record) appointment() *model.Appointment {
	return &model.Appointment{
		ID:        r.ID,
		Date:      r.Date,
		Duration:  r.Duration,
		Text:      r.Text,
		Category:  r.Category,
		Frequency: r.Frequency,
		Times:     r.Times,
		SkipList:  append([]int(nil), r.SkipList...),
		Todo:      r.Todo,
		NextTodo:  r.NextTodo,
		Color:     r.Color,
		Private:   r.Private,
		UID:       r.UID,
		URL:       r.URL,
	}
}
