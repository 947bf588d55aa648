package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/calendar"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := calendar.New(store.NewMemory(), logger, calendar.Config{
		Now: func() time.Time { return time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC) },
	})
	if err := m.Open(context.Background()); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	recon := synclog.NewReconciler(synclog.NewMemory(), logger)
	recon.SetEnabled(true)
	m.OnChange(recon.HandleChange)

	mux := http.NewServeMux()
	NewCalendarHandler(m, recon, logger).Register(mux)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func createAppt(t *testing.T, mux *http.ServeMux, payload map[string]any) int {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/v1/appointments/create", payload)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	return resp.ID
}

func TestCreateAndFetchDay(t *testing.T) {
	mux := newTestMux(t)
	id := createAppt(t, mux, map[string]any{
		"date": "2026-09-01T09:00:00Z",
		"text": "dentist",
	})

	rec := doJSON(t, mux, http.MethodGet, "/v1/days?date=2026-09-01", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("day = %d: %s", rec.Code, rec.Body.String())
	}
	var items []appointmentPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode day response: %v", err)
	}
	if len(items) != 1 || items[0].ID != id || items[0].Text != "dentist" {
		t.Fatalf("day items = %+v", items)
	}

	rec = doJSON(t, mux, http.MethodGet, "/v1/days?date=2026-09-02", nil)
	if rec.Body.String() != "[]" {
		t.Fatalf("empty day = %s, want []", rec.Body.String())
	}
}

func TestCreateRejectsBadInput(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/v1/appointments/create", map[string]any{
		"date": "not-a-date", "text": "x",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad date = %d, want 400", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodPost, "/v1/appointments/create", map[string]any{
		"date": "2026-09-01T09:00:00Z",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing text = %d, want 400", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/appointments/create", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET create = %d, want 405", rec.Code)
	}
}

func TestSkipOccurrenceEndpoint(t *testing.T) {
	mux := newTestMux(t)
	id := createAppt(t, mux, map[string]any{
		"date":      "2026-09-01T00:00:00Z",
		"text":      "gym",
		"frequency": "daily",
		"times":     3,
	})

	rec := doJSON(t, mux, http.MethodPost, "/v1/appointments/skip", map[string]any{
		"id": id, "date": "2026-09-02",
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("skip = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/v1/days?date=2026-09-02", nil)
	if rec.Body.String() != "[]" {
		t.Fatalf("skipped day = %s, want []", rec.Body.String())
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/days?date=2026-09-03", nil)
	var items []appointmentPayload
	_ = json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 {
		t.Fatalf("day after skip = %s, want one entry", rec.Body.String())
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	mux := newTestMux(t)
	id := createAppt(t, mux, map[string]any{
		"date": "2026-09-01T09:00:00Z",
		"text": "ephemeral",
	})

	rec := doJSON(t, mux, http.MethodPost, "/v1/appointments/delete", map[string]any{"id": id})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete = %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/appointments/get?id="+itoa(id), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rec.Code)
	}
}

func TestImportEndpointPreservesAndRetriesIDs(t *testing.T) {
	mux := newTestMux(t)
	existing := createAppt(t, mux, map[string]any{
		"date": "2026-09-01T00:00:00Z",
		"text": "existing",
	})

	rec := doJSON(t, mux, http.MethodPost, "/v1/appointments/import", map[string]any{
		"appointments": []map[string]any{
			{"id": existing, "date": "2026-09-01T00:00:00Z", "text": "imported"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("import = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		IDs []int `json:"ids"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode import response: %v", err)
	}
	if len(resp.IDs) != 1 || resp.IDs[0] != existing+1 {
		t.Fatalf("import ids = %v, want [%d]", resp.IDs, existing+1)
	}
}

func TestTodoEndpoints(t *testing.T) {
	mux := newTestMux(t)
	id := createAppt(t, mux, map[string]any{
		"date": "2026-09-01T00:00:00Z",
		"text": "file taxes",
		"todo": true,
	})

	rec := doJSON(t, mux, http.MethodGet, "/v1/todos", nil)
	var items []appointmentPayload
	_ = json.Unmarshal(rec.Body.Bytes(), &items)
	if len(items) != 1 || items[0].ID != id {
		t.Fatalf("todos = %s", rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/v1/todos/complete", map[string]any{"id": id})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("complete = %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/todos", nil)
	if rec.Body.String() != "[]" {
		t.Fatalf("todos after complete = %s, want []", rec.Body.String())
	}
}

func TestSyncEndpoints(t *testing.T) {
	mux := newTestMux(t)
	createAppt(t, mux, map[string]any{
		"date": "2026-09-01T09:00:00Z",
		"text": "replicated",
	})

	rec := doJSON(t, mux, http.MethodGet, "/v1/sync/pending", nil)
	var entries []syncEntryItem
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode pending: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "ADD" {
		t.Fatalf("pending = %s", rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/v1/sync/reset", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reset = %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/sync/pending", nil)
	if rec.Body.String() != "[]" {
		t.Fatalf("pending after reset = %s, want []", rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodPost, "/v1/sync/enabled", map[string]any{"enabled": false})
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle = %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/v1/sync/enabled", nil)
	var status syncEnabledRequest
	_ = json.Unmarshal(rec.Body.Bytes(), &status)
	if status.Enabled {
		t.Fatal("sync should be disabled after toggle")
	}
}

func TestLoginAndRequireAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewAuthHandler(StaticUser{Username: "owner", Hash: string(hash)}, "test-secret", time.Hour, logger)

	rec := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"username":"owner","password":"wrong"}`)
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/login", body))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	body = bytes.NewBufferString(`{"username":"owner","password":"hunter2"}`)
	h.Login(rec, httptest.NewRequest(http.MethodPost, "/v1/login", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", rec.Code, rec.Body.String())
	}
	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	protected := RequireAuth("test-secret", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/todos", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token = %d, want 401", rec.Code)
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/todos", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("valid token = %d, want 200", rec.Code)
	}
}

func itoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}
