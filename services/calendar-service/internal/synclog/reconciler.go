// Package synclog maintains the per-record change log that the
// replication drain consumes: at most one entry per (id, object type),
// collapsed so the drain replays the net effect of a burst of edits
// instead of every intermediate state.
package synclog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	otelx "github.com/daybook-cal/daybook/libs/otel"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

// ErrNotFound is returned when no log entry exists for a key.
var ErrNotFound = errors.New("synclog: entry not found")

// Entry is one pending replication action for a record. The trace
// context of the originating request rides along so the drain can
// stitch the publish into the same trace.
type Entry struct {
	ID          int
	UID         string
	Object      model.ObjectType
	Action      model.ChangeAction
	Traceparent string
	Tracestate  string
}

// Store persists log entries keyed by (id, object type).
type Store interface {
	Get(ctx context.Context, id int, object model.ObjectType) (*Entry, error)
	Insert(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id int, object model.ObjectType) error
	All(ctx context.Context) ([]*Entry, error)
	DeleteAll(ctx context.Context) error
}

// Memory is the in-process Store, used when no database is configured
// and in tests.
type Memory struct {
	mu      sync.Mutex
	entries map[memKey]Entry
}

type memKey struct {
	id     int
	object model.ObjectType
}

func NewMemory() *Memory {
	return &Memory{entries: map[memKey]Entry{}}
}

func (m *Memory) Get(_ context.Context, id int, object model.ObjectType) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[memKey{id, object}]
	if !ok {
		return nil, fmt.Errorf("get %d/%s: %w", id, object, ErrNotFound)
	}
	cp := e
	return &cp, nil
}

func (m *Memory) Insert(_ context.Context, e *Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[memKey{e.ID, e.Object}] = *e
	return nil
}

func (m *Memory) Delete(_ context.Context, id int, object model.ObjectType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, memKey{id, object})
	return nil
}

func (m *Memory) All(_ context.Context) ([]*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Entry, 0, len(m.entries))
	for _, e := range m.entries {
		cp := e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = map[memKey]Entry{}
	return nil
}

// Reconciler folds change events into the log. It is wired to the
// model as a change handler; events tagged with the sync origin are
// echoes of inbound replication and are dropped here, before they can
// re-enter the outbound queue.
type Reconciler struct {
	store   Store
	logger  *slog.Logger
	enabled atomic.Bool
}

func NewReconciler(store Store, logger *slog.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger}
}

// SetEnabled turns log recording on or off. While disabled, events
// pass through unrecorded.
func (r *Reconciler) SetEnabled(on bool) {
	r.enabled.Store(on)
}

func (r *Reconciler) Enabled() bool {
	return r.enabled.Load()
}

// HandleChange is the model change handler. The log keeps at most one
// entry per record; a new action folds into the existing one:
//
//	ADD    then DELETE -> entry removed (never left the process)
//	CHANGE then DELETE -> DELETE
//	DELETE then ADD    -> CHANGE (the remote copy still exists)
//	anything else      -> existing entry stands
func (r *Reconciler) HandleChange(ctx context.Context, ev model.ChangeEvent) error {
	if !r.enabled.Load() || ev.Origin == model.OriginSync {
		return nil
	}

	uid := recordUID(ev.Appt)
	traceparent, tracestate := otelx.TraceContextStrings(ctx)

	prev, err := r.store.Get(ctx, ev.Appt.ID, ev.Object)
	if errors.Is(err, ErrNotFound) {
		if uid == "" {
			// No stable identifier on the record; mint one for the
			// entry so the remote side has something to key on.
			uid = uuid.NewString()
		}
		return r.store.Insert(ctx, &Entry{
			ID:          ev.Appt.ID,
			UID:         uid,
			Object:      ev.Object,
			Action:      ev.Action,
			Traceparent: traceparent,
			Tracestate:  tracestate,
		})
	}
	if err != nil {
		return fmt.Errorf("record change %d: %w", ev.Appt.ID, err)
	}

	// A record still without its own identifier keeps the one already
	// minted for the entry, so the remote side can correlate updates.
	if uid == "" {
		uid = prev.UID
	}

	next := prev.Action
	switch {
	case prev.Action == model.ActionAdd && ev.Action == model.ActionDelete:
		return r.store.Delete(ctx, ev.Appt.ID, ev.Object)
	case prev.Action == model.ActionChange && ev.Action == model.ActionDelete:
		next = model.ActionDelete
	case prev.Action == model.ActionDelete && ev.Action == model.ActionAdd:
		next = model.ActionChange
	}

	if next == prev.Action && uid == prev.UID {
		return nil
	}
	return r.store.Insert(ctx, &Entry{
		ID:          ev.Appt.ID,
		UID:         uid,
		Object:      ev.Object,
		Action:      next,
		Traceparent: traceparent,
		Tracestate:  tracestate,
	})
}

// Pending returns the queued entries, oldest id first.
func (r *Reconciler) Pending(ctx context.Context) ([]*Entry, error) {
	return r.store.All(ctx)
}

// Remove drops a single entry, typically after the drain has
// replicated it.
func (r *Reconciler) Remove(ctx context.Context, id int, object model.ObjectType) error {
	return r.store.Delete(ctx, id, object)
}

// Reset clears the whole log, for a full re-export.
func (r *Reconciler) Reset(ctx context.Context) error {
	return r.store.DeleteAll(ctx)
}

// recordUID picks the identifier the remote side knows the record by:
// its URL when set, else its UID. Empty means the record carries
// neither.
func recordUID(a *model.Appointment) string {
	if a.URL != "" {
		return a.URL
	}
	return a.UID
}
