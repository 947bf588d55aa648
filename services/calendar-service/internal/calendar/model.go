// Package calendar owns the appointment model: the record store
// handle, the derived day index, and the listener registrations. One
// Model instance is constructed at startup and passed by reference;
// there is no process-wide singleton.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/keys"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/recur"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
)

// Uncategorized is the category bucket for records with none set.
const Uncategorized = "uncategorized"

// Listener is notified after the day index has been rebuilt; views
// re-read whatever days they display.
type Listener func()

// ChangeHandler observes committed mutations. Handlers run
// independently: one failing never blocks delivery to the others or
// of later events.
type ChangeHandler func(ctx context.Context, ev model.ChangeEvent) error

// Config carries the model's construction-time options.
type Config struct {
	// SoftDelete marks records deleted instead of removing them, for
	// the no-overwrite sync mode where the remote side still needs to
	// observe the tombstone.
	SoftDelete bool
	// Now is the clock used for the repeat-expansion cutoff. Defaults
	// to time.Now.
	Now func() time.Time
}

type Model struct {
	store  store.Store
	logger *slog.Logger
	now    func() time.Time

	softDelete bool

	// mu serializes mutations, rebuilds, and filter changes. Reads go
	// through the index pointer and never take it.
	mu        sync.Mutex
	index     atomic.Pointer[dayIndex]
	listeners []Listener
	handlers  []ChangeHandler
	hidden    map[string]bool
}

func New(st store.Store, logger *slog.Logger, cfg Config) *Model {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	m := &Model{
		store:      st,
		logger:     logger,
		now:        cfg.Now,
		softDelete: cfg.SoftDelete,
		hidden:     map[string]bool{},
	}
	m.index.Store(newDayIndex())
	return m
}

// Open performs the initial index build. An empty store is not an
// error; anything else is surfaced to the caller.
func (m *Model) Open(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rebuildLocked(ctx)
}

// AddListener registers a view-refresh listener.
func (m *Model) AddListener(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, l)
}

// OnChange registers a mutation observer.
func (m *Model) OnChange(h ChangeHandler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers = append(m.handlers, h)
}

// ApptsForDay returns the appointment ids active on the day of the
// given base key, or nil.
func (m *Model) ApptsForDay(dayKey int) []int {
	ids := m.index.Load().ids(keys.DayOnly(dayKey))
	if len(ids) == 0 {
		return nil
	}
	return append([]int(nil), ids...)
}

// Month returns day key -> appointment ids for every day of the month
// that has any.
func (m *Model) Month(year int, month time.Month) map[int][]int {
	ix := m.index.Load()
	out := map[int][]int{}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for d := 1; d <= last; d++ {
		key := keys.DayKey(year, month, d)
		if ids := ix.ids(key); len(ids) > 0 {
			out[key] = append([]int(nil), ids...)
		}
	}
	return out
}

// Get reads one record from the store.
func (m *Model) Get(ctx context.Context, id int) (*model.Appointment, error) {
	return m.store.Read(ctx, id)
}

// AllocateNextID returns the first unused id at or after the base key
// of date, stepping one sequence number at a time. Each candidate is
// checked against the authoritative store, not the day index, which
// is only rebuilt after the insert commits.
func (m *Model) AllocateNextID(ctx context.Context, date time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocateLocked(ctx, date)
}

func (m *Model) allocateLocked(ctx context.Context, date time.Time) (int, error) {
	key := keys.KeyFor(date)
	for {
		_, err := m.store.Read(ctx, key)
		if store.IsNotFound(err) {
			return key, nil
		}
		if err != nil {
			return 0, fmt.Errorf("allocate id near %d: %w", key, err)
		}
		key++
	}
}

// Save creates or updates a record, then rebuilds the index and
// notifies listeners. On add with a zero id the allocator assigns one.
func (m *Model) Save(ctx context.Context, a *model.Appointment, add bool) error {
	return m.save(ctx, a, add, model.OriginLocal)
}

// SyncSave applies a record written on behalf of the external sync
// target: id 0 means create. The resulting id is returned.
func (m *Model) SyncSave(ctx context.Context, a *model.Appointment) (int, error) {
	err := m.save(ctx, a, a.ID == 0, model.OriginSync)
	return a.ID, err
}

// BulkAdd applies each record through the normal create path without
// per-item rebuilds, then rebuilds and broadcasts exactly once.
// Records arriving with a preset id keep it, retrying on collision
// with the next sequence number (the import contract).
func (m *Model) BulkAdd(ctx context.Context, appts []*model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error
	for _, a := range appts {
		if err := m.createLocked(ctx, a); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			m.logger.Error("bulk add record failed", "id", a.ID, "err", err)
			continue
		}
		m.emitLocked(ctx, model.ChangeEvent{
			Object: model.ObjectAppointment,
			Action: model.ActionAdd,
			Origin: model.OriginLocal,
			Appt:   a.Clone(),
		})
	}

	if err := m.rebuildLocked(ctx); err != nil {
		m.logger.Error("index rebuild after bulk add failed", "err", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	m.notifyLocked()
	return firstErr
}

func (m *Model) createLocked(ctx context.Context, a *model.Appointment) error {
	if a.ID == 0 {
		id, err := m.allocateLocked(ctx, a.Date)
		if err != nil {
			return err
		}
		a.ID = id
		return m.store.Create(ctx, a)
	}

	// Preset id: keep bumping the sequence number until the store
	// accepts it.
	for {
		err := m.store.Create(ctx, a)
		if !store.IsDuplicateKey(err) {
			return err
		}
		a.ID++
	}
}

func (m *Model) save(ctx context.Context, a *model.Appointment, add bool, origin model.ChangeOrigin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var saveErr error
	action := model.ActionChange
	if add {
		action = model.ActionAdd
		if a.ID == 0 {
			id, err := m.allocateLocked(ctx, a.Date)
			if err != nil {
				return err
			}
			a.ID = id
		}
		saveErr = m.store.Create(ctx, a)
	} else {
		saveErr = m.store.Update(ctx, a)
	}

	if saveErr == nil {
		m.emitLocked(ctx, model.ChangeEvent{
			Object: model.ObjectAppointment,
			Action: action,
			Origin: origin,
			Appt:   a.Clone(),
		})
	}

	// Rebuild and broadcast even after a store failure so views
	// reflect whatever is currently knowable.
	if err := m.rebuildLocked(ctx); err != nil {
		m.logger.Error("index rebuild failed", "err", err)
		if saveErr == nil {
			saveErr = err
		}
	}
	m.notifyLocked()
	return saveErr
}

// Delete removes a record: physically, or by setting the deleted flag
// when the no-overwrite sync mode is active. A record that is already
// gone is an empty result, not an error.
func (m *Model) Delete(ctx context.Context, id int) error {
	return m.delete(ctx, id, m.softDelete, model.OriginLocal)
}

// ForceDelete removes the record physically regardless of sync mode.
func (m *Model) ForceDelete(ctx context.Context, id int) error {
	return m.delete(ctx, id, false, model.OriginLocal)
}

// SyncDelete removes a record on behalf of the external sync target.
// The emitted change event carries the sync origin so the delete is
// not echoed back onto the outbound queue.
func (m *Model) SyncDelete(ctx context.Context, id int) error {
	return m.delete(ctx, id, false, model.OriginSync)
}

func (m *Model) delete(ctx context.Context, id int, soft bool, origin model.ChangeOrigin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var delErr error
	a, err := m.store.Read(ctx, id)
	switch {
	case store.IsNotFound(err):
		a = nil
	case err != nil:
		delErr = err
	case soft:
		a.Deleted = true
		delErr = m.store.Update(ctx, a)
	default:
		delErr = m.store.Delete(ctx, id)
	}

	if a != nil && delErr == nil {
		m.emitLocked(ctx, model.ChangeEvent{
			Object: model.ObjectAppointment,
			Action: model.ActionDelete,
			Origin: origin,
			Appt:   a.Clone(),
		})
	}

	// Even a failed delete rebuilds and broadcasts: the failure may be
	// a record already removed underneath us, and the views need to
	// reflect that.
	if err := m.rebuildLocked(ctx); err != nil {
		m.logger.Error("index rebuild failed", "err", err)
		if delErr == nil {
			delErr = err
		}
	}
	m.notifyLocked()
	return delErr
}

// DeleteOccurrence removes a single occurrence of a repeating series
// by adding its day key to the skip list.
func (m *Model) DeleteOccurrence(ctx context.Context, id, dayKey int) error {
	a, err := m.store.Read(ctx, id)
	if err != nil {
		return err
	}
	if !a.Repeats() {
		return fmt.Errorf("appointment %d does not repeat", id)
	}
	dayKey = keys.DayOnly(dayKey)
	if !a.Skipped(dayKey) {
		a.SkipList = append(a.SkipList, dayKey)
	}
	return m.Save(ctx, a, false)
}

// CompleteTodo marks the current occurrence of a todo done. For a
// repeating todo the next occurrence becomes current; otherwise the
// todo is shut off, or deleted when del is set.
func (m *Model) CompleteTodo(ctx context.Context, id int, del bool) error {
	a, err := m.store.Read(ctx, id)
	if err != nil {
		return err
	}

	cur := a.Date
	if a.NextTodo != nil {
		cur = *a.NextTodo
	}

	// Walk the repeat chain forward to the first occurrence past the
	// one being completed, bounded by the repeat count.
	var next *time.Time
	if a.Repeats() {
		e := recur.NewExpander(a.Date, a.Frequency)
		for i := 1; i < a.Times; i++ {
			e.Next()
			c, ok := e.Current()
			if !ok {
				continue
			}
			if keys.KeyFor(c) > keys.KeyFor(cur) {
				nt := c
				next = &nt
				break
			}
		}
	}

	if next != nil {
		a.NextTodo = next
		return m.Save(ctx, a, false)
	}
	if del {
		return m.Delete(ctx, id)
	}
	a.Todo = false
	a.Color = "strike"
	return m.Save(ctx, a, false)
}

// Todos returns the visible todo-flagged records, via the store's
// todo index.
func (m *Model) Todos(ctx context.Context) ([]*model.Appointment, error) {
	ids, err := m.store.TodoIDs(ctx)
	if store.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	hidden := m.hiddenSet()
	var out []*model.Appointment
	for _, id := range ids {
		a, err := m.store.Read(ctx, id)
		if store.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if a.Deleted || hidden[bucket(a.Category)] {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// HaveTodos reports whether any todo records exist at all.
func (m *Model) HaveTodos(ctx context.Context) (bool, error) {
	ids, err := m.store.TodoIDs(ctx)
	if store.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

// Search returns visible records whose text contains q.
func (m *Model) Search(ctx context.Context, q string) ([]*model.Appointment, error) {
	appts, err := m.visibleAppts(ctx)
	if err != nil {
		return nil, err
	}
	var out []*model.Appointment
	for _, a := range appts {
		if strings.Contains(a.Text, q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// Deleted returns the soft-deleted records awaiting replication.
func (m *Model) Deleted(ctx context.Context) ([]*model.Appointment, error) {
	appts, err := m.store.ScanAll(ctx)
	if store.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []*model.Appointment
	for _, a := range appts {
		if a.Deleted {
			out = append(out, a)
		}
	}
	return out, nil
}

// Categories returns the distinct categories present in the store,
// always including the uncategorized bucket.
func (m *Model) Categories(ctx context.Context) ([]string, error) {
	appts, err := m.store.ScanAll(ctx)
	if err != nil && !store.IsNotFound(err) {
		return nil, err
	}
	set := map[string]bool{Uncategorized: true}
	for _, a := range appts {
		if a.Category != "" {
			set[a.Category] = true
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}

// SetCategoryFilter hides the given categories from the day index and
// rebuilds it.
func (m *Model) SetCategoryFilter(ctx context.Context, hidden []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hidden = map[string]bool{}
	for _, c := range hidden {
		m.hidden[c] = true
	}
	err := m.rebuildLocked(ctx)
	m.notifyLocked()
	return err
}

// HiddenCategories returns the currently filtered categories.
func (m *Model) HiddenCategories() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.hidden))
	for c := range m.hidden {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Rebuild recomputes the day index from the store. On failure the
// previous index stays in place.
func (m *Model) Rebuild(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rebuildLocked(ctx)
}

func (m *Model) rebuildLocked(ctx context.Context) error {
	ix, err := m.buildIndex(ctx)
	if err != nil {
		return err
	}
	m.index.Store(ix)
	return nil
}

func (m *Model) buildIndex(ctx context.Context) (*dayIndex, error) {
	ix := newDayIndex()

	appts, err := m.store.ScanAll(ctx)
	if store.IsNotFound(err) {
		return ix, nil
	}
	if err != nil {
		return nil, fmt.Errorf("index scan: %w", err)
	}

	repeats, err := m.store.RepeatIDs(ctx)
	if store.IsNotFound(err) {
		repeats = map[int]bool{}
	} else if err != nil {
		return nil, fmt.Errorf("index repeat keys: %w", err)
	}

	cutoff := m.now().Year() + 2
	for _, a := range appts {
		if a.Deleted || m.hidden[bucket(a.Category)] {
			continue
		}

		if !repeats[a.ID] {
			ix.add(keys.DayOnly(a.ID), a.ID)
			continue
		}

		// The anchor day is encoded in the id itself; repeats are
		// plotted from there with calendar math.
		skip := map[int]bool{}
		for _, k := range a.SkipList {
			skip[k] = true
		}
		anchor := keys.TimeOf(keys.DayOnly(a.ID), time.UTC)
		for _, occ := range recur.Expand(anchor, a.Frequency, a.Times, skip, cutoff) {
			ix.add(keys.KeyFor(occ), a.ID)
		}
	}
	return ix, nil
}

func (m *Model) visibleAppts(ctx context.Context) ([]*model.Appointment, error) {
	appts, err := m.store.ScanAll(ctx)
	if store.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	hidden := m.hiddenSet()
	var out []*model.Appointment
	for _, a := range appts {
		if a.Deleted || hidden[bucket(a.Category)] {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *Model) hiddenSet() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]bool, len(m.hidden))
	for c := range m.hidden {
		out[c] = true
	}
	return out
}

func bucket(category string) string {
	if category == "" {
		return Uncategorized
	}
	return category
}

func (m *Model) emitLocked(ctx context.Context, ev model.ChangeEvent) {
	for _, h := range m.handlers {
		if err := h(ctx, ev); err != nil {
			m.logger.Error("change handler failed",
				"id", ev.Appt.ID,
				"action", string(ev.Action),
				"err", err,
			)
		}
	}
}

func (m *Model) notifyLocked() {
	for _, l := range m.listeners {
		l()
	}
}
