package synclog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

func newTestReconciler(t *testing.T) (*Reconciler, *Memory) {
	t.Helper()
	mem := NewMemory()
	r := NewReconciler(mem, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.SetEnabled(true)
	return r, mem
}

func event(id int, action model.ChangeAction) model.ChangeEvent {
	return model.ChangeEvent{
		Object: model.ObjectAppointment,
		Action: action,
		Origin: model.OriginLocal,
		Appt: &model.Appointment{
			ID:   id,
			Date: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
			UID:  "uid-42",
		},
	}
}

func handle(t *testing.T, r *Reconciler, ev model.ChangeEvent) {
	t.Helper()
	if err := r.HandleChange(context.Background(), ev); err != nil {
		t.Fatalf("HandleChange failed: %v", err)
	}
}

func pending(t *testing.T, r *Reconciler) []*Entry {
	t.Helper()
	out, err := r.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	return out
}

func TestAddThenDeleteCancelsOut(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(42, model.ActionAdd))
	handle(t, r, event(42, model.ActionDelete))

	if got := pending(t, r); len(got) != 0 {
		t.Fatalf("log = %v, want empty after add+delete", got)
	}
}

func TestChangeThenDeleteBecomesDelete(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(42, model.ActionChange))
	handle(t, r, event(42, model.ActionDelete))

	got := pending(t, r)
	if len(got) != 1 || got[0].Action != model.ActionDelete {
		t.Fatalf("log = %v, want a single DELETE", got)
	}
}

func TestDeleteThenAddBecomesChange(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(42, model.ActionDelete))
	handle(t, r, event(42, model.ActionAdd))

	got := pending(t, r)
	if len(got) != 1 || got[0].Action != model.ActionChange {
		t.Fatalf("log = %v, want a single CHANGE", got)
	}
}

func TestRepeatedChangesCollapse(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(42, model.ActionAdd))
	handle(t, r, event(42, model.ActionChange))
	handle(t, r, event(42, model.ActionChange))

	got := pending(t, r)
	if len(got) != 1 || got[0].Action != model.ActionAdd {
		t.Fatalf("log = %v, want the original ADD to stand", got)
	}
}

func TestDisabledReconcilerRecordsNothing(t *testing.T) {
	r, _ := newTestReconciler(t)
	r.SetEnabled(false)
	handle(t, r, event(42, model.ActionAdd))

	if got := pending(t, r); len(got) != 0 {
		t.Fatalf("log = %v, want empty while disabled", got)
	}
}

func TestSyncOriginEventsAreDropped(t *testing.T) {
	r, _ := newTestReconciler(t)
	ev := event(42, model.ActionAdd)
	ev.Origin = model.OriginSync
	handle(t, r, ev)

	if got := pending(t, r); len(got) != 0 {
		t.Fatalf("log = %v, inbound echo must not re-enter the queue", got)
	}
}

func TestRemoteUIDPrefersURL(t *testing.T) {
	r, _ := newTestReconciler(t)
	ev := event(42, model.ActionAdd)
	ev.Appt.URL = "https://cal.example/obj/42"
	handle(t, r, ev)

	got := pending(t, r)
	if len(got) != 1 || got[0].UID != "https://cal.example/obj/42" {
		t.Fatalf("log = %v, want the URL as remote identifier", got)
	}
}

func TestRemoteUIDGeneratedWhenMissing(t *testing.T) {
	r, _ := newTestReconciler(t)
	ev := event(42, model.ActionAdd)
	ev.Appt.UID = ""
	handle(t, r, ev)

	got := pending(t, r)
	if len(got) != 1 || got[0].UID == "" {
		t.Fatalf("log = %v, want a generated identifier", got)
	}
}

func TestMintedUIDStableAcrossEvents(t *testing.T) {
	r, _ := newTestReconciler(t)
	ev := event(42, model.ActionAdd)
	ev.Appt.UID = ""
	handle(t, r, ev)

	minted := pending(t, r)[0].UID
	if minted == "" {
		t.Fatal("expected a minted identifier on the first event")
	}

	ev = event(42, model.ActionChange)
	ev.Appt.UID = ""
	handle(t, r, ev)

	got := pending(t, r)
	if len(got) != 1 || got[0].UID != minted {
		t.Fatalf("log = %v, want the minted identifier %q kept across events", got, minted)
	}
}

func TestUIDRefreshedOnLaterEvent(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(42, model.ActionAdd))

	ev := event(42, model.ActionChange)
	ev.Appt.URL = "https://cal.example/obj/42"
	handle(t, r, ev)

	got := pending(t, r)
	if len(got) != 1 || got[0].UID != "https://cal.example/obj/42" {
		t.Fatalf("log = %v, want refreshed identifier with ADD intact", got)
	}
	if got[0].Action != model.ActionAdd {
		t.Fatalf("action = %s, want ADD preserved across the refresh", got[0].Action)
	}
}

func TestResetClearsLog(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(41, model.ActionAdd))
	handle(t, r, event(42, model.ActionChange))

	if err := r.Reset(context.Background()); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if got := pending(t, r); len(got) != 0 {
		t.Fatalf("log = %v, want empty after reset", got)
	}
}

func TestRemoveDropsSingleEntry(t *testing.T) {
	r, _ := newTestReconciler(t)
	handle(t, r, event(41, model.ActionAdd))
	handle(t, r, event(42, model.ActionChange))

	if err := r.Remove(context.Background(), 41, model.ObjectAppointment); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	got := pending(t, r)
	if len(got) != 1 || got[0].ID != 42 {
		t.Fatalf("log = %v, want only entry 42", got)
	}
}
