package calendar

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/keys"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
)

func testClock() time.Time {
	return time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)
}

func newTestModel(t *testing.T) (*Model, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	m := New(mem, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{Now: testClock})
	if err := m.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return m, mem
}

func mustSave(t *testing.T, m *Model, a *model.Appointment) int {
	t.Helper()
	if err := m.Save(context.Background(), a, true); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return a.ID
}

func TestSaveAllocatesSequentialIDs(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	base := keys.KeyFor(date)

	for i := 0; i < 3; i++ {
		id := mustSave(t, m, &model.Appointment{Date: date, Text: "standup"})
		if id != base+i {
			t.Fatalf("appointment %d got id %d, want %d", i, id, base+i)
		}
	}

	got, err := m.AllocateNextID(context.Background(), date)
	if err != nil {
		t.Fatalf("AllocateNextID failed: %v", err)
	}
	if got != base+3 {
		t.Fatalf("AllocateNextID = %d, want %d", got, base+3)
	}
}

func TestIndexPlacesNonRepeatingOnOwnDay(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{Date: date, Text: "dentist"})

	ids := m.ApptsForDay(keys.KeyFor(date))
	if len(ids) != 1 || ids[0] != id {
		t.Fatalf("ApptsForDay = %v, want [%d]", ids, id)
	}
	if m.ApptsForDay(keys.DayKey(2026, time.September, 2)) != nil {
		t.Fatal("adjacent day should be empty")
	}
}

func TestIndexExpandsYearlyRepeatWithCutoff(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{
		Date:      date,
		Text:      "anniversary",
		Frequency: "yearly",
		Times:     5,
	})

	// Five repeats would reach 2030, but the index materializes
	// nothing past current year (2026) + 2.
	for _, year := range []int{2026, 2027, 2028} {
		ids := m.ApptsForDay(keys.DayKey(year, time.September, 1))
		if len(ids) != 1 || ids[0] != id {
			t.Fatalf("year %d: ApptsForDay = %v, want [%d]", year, ids, id)
		}
	}
	for _, year := range []int{2029, 2030} {
		if ids := m.ApptsForDay(keys.DayKey(year, time.September, 1)); ids != nil {
			t.Fatalf("year %d: expected no occurrences past cutoff, got %v", year, ids)
		}
	}
}

func TestDeleteOccurrenceRemovesSingleDay(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{
		Date:      date,
		Text:      "gym",
		Frequency: "daily",
		Times:     3,
	})

	skipDay := keys.DayKey(2026, time.September, 2)
	if err := m.DeleteOccurrence(context.Background(), id, skipDay); err != nil {
		t.Fatalf("DeleteOccurrence failed: %v", err)
	}

	if ids := m.ApptsForDay(skipDay); ids != nil {
		t.Fatalf("skipped day still indexed: %v", ids)
	}
	for _, day := range []int{1, 3} {
		ids := m.ApptsForDay(keys.DayKey(2026, time.September, day))
		if len(ids) != 1 || ids[0] != id {
			t.Fatalf("day %d: ApptsForDay = %v, want [%d]", day, ids, id)
		}
	}
}

func TestBulkAddRebuildsAndBroadcastsOnce(t *testing.T) {
	m, _ := newTestModel(t)
	broadcasts := 0
	m.AddListener(func() { broadcasts++ })

	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	appts := []*model.Appointment{
		{Date: date, Text: "one"},
		{Date: date, Text: "two"},
		{Date: date.AddDate(0, 0, 1), Text: "three"},
	}
	if err := m.BulkAdd(context.Background(), appts); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}

	if broadcasts != 1 {
		t.Fatalf("bulk add broadcast %d times, want 1", broadcasts)
	}
	if ids := m.ApptsForDay(keys.KeyFor(date)); len(ids) != 2 {
		t.Fatalf("first day has %d entries, want 2", len(ids))
	}
}

func TestBulkAddRetriesDuplicatePresetID(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	existing := mustSave(t, m, &model.Appointment{Date: date, Text: "existing"})

	imported := &model.Appointment{ID: existing, Date: date, Text: "imported"}
	if err := m.BulkAdd(context.Background(), []*model.Appointment{imported}); err != nil {
		t.Fatalf("BulkAdd failed: %v", err)
	}
	if imported.ID != existing+1 {
		t.Fatalf("imported record kept id %d, want %d", imported.ID, existing+1)
	}
}

type failingStore struct {
	store.Store
	scanErr error
}

func (f *failingStore) ScanAll(ctx context.Context) ([]*model.Appointment, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	return f.Store.ScanAll(ctx)
}

func TestRebuildFailureKeepsPreviousIndex(t *testing.T) {
	mem := store.NewMemory()
	fs := &failingStore{Store: mem}
	m := New(fs, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{Now: testClock})
	if err := m.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{Date: date, Text: "kept"})

	fs.scanErr = errors.New("disk on fire")
	if err := m.Rebuild(context.Background()); err == nil {
		t.Fatal("expected rebuild to surface the store error")
	}

	ids := m.ApptsForDay(keys.KeyFor(date))
	if len(ids) != 1 || ids[0] != id {
		t.Fatalf("previous index lost after failed rebuild: %v", ids)
	}
}

func TestEmptyStoreYieldsEmptyIndex(t *testing.T) {
	m, _ := newTestModel(t)
	if err := m.Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild of empty store must not fail: %v", err)
	}
	if ids := m.ApptsForDay(keys.DayKey(2026, time.September, 1)); ids != nil {
		t.Fatalf("empty store produced entries: %v", ids)
	}
}

func TestSoftDeleteExcludesFromIndexButRetainsRecord(t *testing.T) {
	mem := store.NewMemory()
	m := New(mem, slog.New(slog.NewTextHandler(io.Discard, nil)), Config{Now: testClock, SoftDelete: true})
	if err := m.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{Date: date, Text: "tombstoned"})
	if err := m.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if ids := m.ApptsForDay(keys.KeyFor(date)); ids != nil {
		t.Fatalf("soft-deleted record still indexed: %v", ids)
	}
	a, err := m.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("soft-deleted record gone from store: %v", err)
	}
	if !a.Deleted {
		t.Fatal("record not flagged deleted")
	}

	deleted, err := m.Deleted(context.Background())
	if err != nil || len(deleted) != 1 {
		t.Fatalf("Deleted() = %v, %v", deleted, err)
	}
}

func TestPhysicalDeleteRemovesRecord(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{Date: date, Text: "gone"})

	if err := m.Delete(context.Background(), id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get(context.Background(), id); !store.IsNotFound(err) {
		t.Fatalf("expected NotFound after delete, got %v", err)
	}
	// Deleting again is an empty result, not an error.
	if err := m.Delete(context.Background(), id); err != nil {
		t.Fatalf("second delete should be a no-op, got %v", err)
	}
}

func TestCategoryFilterExcludesFromIndex(t *testing.T) {
	m, _ := newTestModel(t)
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	workID := mustSave(t, m, &model.Appointment{Date: date, Text: "review", Category: "work"})
	mustSave(t, m, &model.Appointment{Date: date, Text: "birthday", Category: "home"})

	if err := m.SetCategoryFilter(context.Background(), []string{"home"}); err != nil {
		t.Fatalf("SetCategoryFilter failed: %v", err)
	}
	ids := m.ApptsForDay(keys.KeyFor(date))
	if len(ids) != 1 || ids[0] != workID {
		t.Fatalf("filtered index = %v, want [%d]", ids, workID)
	}

	if err := m.SetCategoryFilter(context.Background(), nil); err != nil {
		t.Fatalf("SetCategoryFilter failed: %v", err)
	}
	if ids := m.ApptsForDay(keys.KeyFor(date)); len(ids) != 2 {
		t.Fatalf("unfiltered index = %v, want both records", ids)
	}
}

func TestCompleteTodoWalksRepeatChain(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{
		Date:      date,
		Text:      "water plants",
		Frequency: "weekly",
		Times:     3,
		Todo:      true,
	})

	if err := m.CompleteTodo(ctx, id, false); err != nil {
		t.Fatalf("CompleteTodo failed: %v", err)
	}
	a, err := m.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if a.NextTodo == nil || keys.KeyFor(*a.NextTodo) != keys.DayKey(2026, time.September, 8) {
		t.Fatalf("NextTodo = %v, want Sep 8", a.NextTodo)
	}

	if err := m.CompleteTodo(ctx, id, false); err != nil {
		t.Fatalf("CompleteTodo failed: %v", err)
	}
	a, _ = m.Get(ctx, id)
	if a.NextTodo == nil || keys.KeyFor(*a.NextTodo) != keys.DayKey(2026, time.September, 15) {
		t.Fatalf("NextTodo = %v, want Sep 15", a.NextTodo)
	}

	// Last occurrence: the todo is shut off, not advanced.
	if err := m.CompleteTodo(ctx, id, false); err != nil {
		t.Fatalf("CompleteTodo failed: %v", err)
	}
	a, _ = m.Get(ctx, id)
	if a.Todo {
		t.Fatal("todo still active past the last occurrence")
	}
	if a.Color != "strike" {
		t.Fatalf("completed todo color = %q", a.Color)
	}
}

func TestCompleteTodoDeleteOnLast(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	id := mustSave(t, m, &model.Appointment{Date: date, Text: "one-shot", Todo: true})

	if err := m.CompleteTodo(ctx, id, true); err != nil {
		t.Fatalf("CompleteTodo failed: %v", err)
	}
	if _, err := m.Get(ctx, id); !store.IsNotFound(err) {
		t.Fatalf("expected record deleted, got %v", err)
	}
}

func TestSearchFiltersHiddenCategories(t *testing.T) {
	m, _ := newTestModel(t)
	ctx := context.Background()
	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	mustSave(t, m, &model.Appointment{Date: date, Text: "project kickoff", Category: "work"})
	mustSave(t, m, &model.Appointment{Date: date, Text: "project dinner", Category: "home"})

	if err := m.SetCategoryFilter(ctx, []string{"home"}); err != nil {
		t.Fatalf("SetCategoryFilter failed: %v", err)
	}
	hits, err := m.Search(ctx, "project")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(hits) != 1 || hits[0].Category != "work" {
		t.Fatalf("Search = %d hits, want the work record only", len(hits))
	}
}

func TestChangeHandlersRunIndependently(t *testing.T) {
	m, _ := newTestModel(t)
	var got []model.ChangeAction
	m.OnChange(func(context.Context, model.ChangeEvent) error {
		return errors.New("first handler broken")
	})
	m.OnChange(func(_ context.Context, ev model.ChangeEvent) error {
		got = append(got, ev.Action)
		return nil
	})

	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	a := &model.Appointment{Date: date, Text: "observed"}
	mustSave(t, m, a)
	if err := m.Save(context.Background(), a, false); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := m.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	want := []model.ChangeAction{model.ActionAdd, model.ActionChange, model.ActionDelete}
	if len(got) != len(want) {
		t.Fatalf("second handler saw %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("second handler saw %v, want %v", got, want)
		}
	}
}

func TestSyncSaveAssignsIDAndTagsOrigin(t *testing.T) {
	m, _ := newTestModel(t)
	var origins []model.ChangeOrigin
	m.OnChange(func(_ context.Context, ev model.ChangeEvent) error {
		origins = append(origins, ev.Origin)
		return nil
	})

	date := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	a := &model.Appointment{Date: date, Text: "from remote"}
	id, err := m.SyncSave(context.Background(), a)
	if err != nil {
		t.Fatalf("SyncSave failed: %v", err)
	}
	if id != keys.KeyFor(date) {
		t.Fatalf("SyncSave id = %d, want base key %d", id, keys.KeyFor(date))
	}
	if len(origins) != 1 || origins[0] != model.OriginSync {
		t.Fatalf("origins = %v, want one sync-origin event", origins)
	}
}

func TestSyncDeleteTagsOrigin(t *testing.T) {
	m, _ := newTestModel(t)
	a := &model.Appointment{
		Date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		Text: "to remove",
	}
	id := mustSave(t, m, a)

	var events []model.ChangeEvent
	m.OnChange(func(_ context.Context, ev model.ChangeEvent) error {
		events = append(events, ev)
		return nil
	})

	if err := m.SyncDelete(context.Background(), id); err != nil {
		t.Fatalf("SyncDelete failed: %v", err)
	}
	if len(events) != 1 || events[0].Action != model.ActionDelete {
		t.Fatalf("events = %v, want one DELETE", events)
	}
	if events[0].Origin != model.OriginSync {
		t.Fatalf("origin = %v, want sync origin on a replicated delete", events[0].Origin)
	}
	if _, err := m.Get(context.Background(), id); !store.IsNotFound(err) {
		t.Fatalf("Get after SyncDelete = %v, want not-found", err)
	}
}

func TestMonthView(t *testing.T) {
	m, _ := newTestModel(t)
	d1 := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	mustSave(t, m, &model.Appointment{Date: d1, Text: "a"})
	mustSave(t, m, &model.Appointment{Date: d2, Text: "b"})
	mustSave(t, m, &model.Appointment{Date: d2.AddDate(0, 1, 0), Text: "c"})

	month := m.Month(2026, time.September)
	if len(month) != 2 {
		t.Fatalf("month view has %d days, want 2", len(month))
	}
	if _, ok := month[keys.KeyFor(d1)]; !ok {
		t.Fatal("Sep 1 missing from month view")
	}
}
