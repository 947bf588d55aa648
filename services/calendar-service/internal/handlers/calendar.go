package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/calendar"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/keys"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/synclog"
)

type CalendarHandler struct {
	model  *calendar.Model
	recon  *synclog.Reconciler
	logger *slog.Logger
}

func NewCalendarHandler(m *calendar.Model, recon *synclog.Reconciler, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{model: m, recon: recon, logger: logger}
}

type appointmentPayload struct {
	ID        int        `json:"id,omitempty"`
	Date      string     `json:"date"`
	Duration  int        `json:"duration,omitempty"`
	Text      string     `json:"text"`
	Category  string     `json:"category,omitempty"`
	Frequency string     `json:"frequency,omitempty"`
	Times     int        `json:"times,omitempty"`
	SkipList  []int      `json:"skip_list,omitempty"`
	Todo      bool       `json:"todo,omitempty"`
	NextTodo  *time.Time `json:"next_todo,omitempty"`
	Color     string     `json:"color,omitempty"`
	Deleted   bool       `json:"deleted,omitempty"`
	Private   bool       `json:"private,omitempty"`
	UID       string     `json:"uid,omitempty"`
	URL       string     `json:"url,omitempty"`
	Note      bool       `json:"note,omitempty"`
}

func fromPayload(p appointmentPayload) (*model.Appointment, error) {
	date, err := time.Parse(time.RFC3339, strings.TrimSpace(p.Date))
	if err != nil {
		return nil, err
	}
	return &model.Appointment{
		ID:        p.ID,
		Date:      date,
		Duration:  p.Duration,
		Text:      strings.TrimSpace(p.Text),
		Category:  strings.TrimSpace(p.Category),
		Frequency: p.Frequency,
		Times:     p.Times,
		SkipList:  p.SkipList,
		Todo:      p.Todo,
		NextTodo:  p.NextTodo,
		Color:     p.Color,
		Deleted:   p.Deleted,
		Private:   p.Private,
		UID:       strings.TrimSpace(p.UID),
		URL:       strings.TrimSpace(p.URL),
	}, nil
}

func toPayload(a *model.Appointment) appointmentPayload {
	return appointmentPayload{
		ID:        a.ID,
		Date:      a.Date.UTC().Format(time.RFC3339),
		Duration:  a.Duration,
		Text:      a.Text,
		Category:  a.Category,
		Frequency: a.Frequency,
		Times:     a.Times,
		SkipList:  a.SkipList,
		Todo:      a.Todo,
		NextTodo:  a.NextTodo,
		Color:     a.Color,
		Deleted:   a.Deleted,
		Private:   a.Private,
		UID:       a.UID,
		URL:       a.URL,
		Note:      a.IsNote(),
	}
}

func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req appointmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	a, err := fromPayload(req)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if a.Text == "" {
		http.Error(w, "text required", http.StatusBadRequest)
		return
	}
	a.ID = 0

	if err := h.model.Save(r.Context(), a, true); err != nil {
		h.logger.Error("create appointment failed", "err", err)
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"id": a.ID})
}

func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, ok := intParam(r, "id")
	if !ok {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	a, err := h.model.Get(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toPayload(a))
}

func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req appointmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	a, err := fromPayload(req)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	if a.ID == 0 {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	if err := h.model.Save(r.Context(), a, false); err != nil {
		if store.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("update appointment failed", "id", a.ID, "err", err)
		http.Error(w, "failed to update appointment", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"id": a.ID})
}

type deleteRequest struct {
	ID    int  `json:"id"`
	Force bool `json:"force,omitempty"`
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	var err error
	if req.Force {
		err = h.model.ForceDelete(r.Context(), req.ID)
	} else {
		err = h.model.Delete(r.Context(), req.ID)
	}
	if err != nil {
		h.logger.Error("delete appointment failed", "id", req.ID, "err", err)
		http.Error(w, "failed to delete appointment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type skipRequest struct {
	ID   int    `json:"id"`
	Date string `json:"date"`
}

// SkipOccurrence removes a single day from a repeating series.
func (h *CalendarHandler) SkipOccurrence(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req skipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(req.Date), time.UTC)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	if err := h.model.DeleteOccurrence(r.Context(), req.ID, keys.KeyFor(day)); err != nil {
		if store.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to skip occurrence", http.StatusUnprocessableEntity)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type importRequest struct {
	Appointments []appointmentPayload `json:"appointments"`
}

// Import bulk-loads records, preserving preset ids where possible.
func (h *CalendarHandler) Import(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	appts := make([]*model.Appointment, 0, len(req.Appointments))
	for _, p := range req.Appointments {
		a, err := fromPayload(p)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
		appts = append(appts, a)
	}

	if err := h.model.BulkAdd(r.Context(), appts); err != nil {
		h.logger.Error("import failed", "count", len(appts), "err", err)
		http.Error(w, "import failed", http.StatusInternalServerError)
		return
	}

	ids := make([]int, len(appts))
	for i, a := range appts {
		ids[i] = a.ID
	}
	writeJSON(w, http.StatusCreated, map[string]any{"ids": ids})
}

// Day returns the appointments active on one calendar day.
func (h *CalendarHandler) Day(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	day, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(r.URL.Query().Get("date")), time.UTC)
	if err != nil {
		http.Error(w, "date required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}

	items := []appointmentPayload{}
	for _, id := range h.model.ApptsForDay(keys.KeyFor(day)) {
		a, err := h.model.Get(r.Context(), id)
		if store.IsNotFound(err) {
			continue
		}
		if err != nil {
			http.Error(w, "failed to load appointments", http.StatusInternalServerError)
			return
		}
		items = append(items, toPayload(a))
	}
	writeJSON(w, http.StatusOK, items)
}

// Month returns day -> appointment ids for one month.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	year, okY := intParam(r, "year")
	month, okM := intParam(r, "month")
	if !okY || !okM || month < 1 || month > 12 {
		http.Error(w, "year and month required", http.StatusBadRequest)
		return
	}

	days := h.model.Month(year, time.Month(month))
	out := map[string][]int{}
	for key, ids := range days {
		out[keys.TimeOf(key, time.UTC).Format("2006-01-02")] = ids
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *CalendarHandler) Todos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	todos, err := h.model.Todos(r.Context())
	if err != nil {
		http.Error(w, "failed to list todos", http.StatusInternalServerError)
		return
	}
	items := make([]appointmentPayload, 0, len(todos))
	for _, a := range todos {
		items = append(items, toPayload(a))
	}
	writeJSON(w, http.StatusOK, items)
}

type completeTodoRequest struct {
	ID     int  `json:"id"`
	Delete bool `json:"delete,omitempty"`
}

func (h *CalendarHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req completeTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 {
		http.Error(w, "id required", http.StatusBadRequest)
		return
	}

	if err := h.model.CompleteTodo(r.Context(), req.ID, req.Delete); err != nil {
		if store.IsNotFound(err) {
			http.Error(w, "todo not found", http.StatusNotFound)
			return
		}
		h.logger.Error("complete todo failed", "id", req.ID, "err", err)
		http.Error(w, "failed to complete todo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CalendarHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "q required", http.StatusBadRequest)
		return
	}

	hits, err := h.model.Search(r.Context(), q)
	if err != nil {
		http.Error(w, "search failed", http.StatusInternalServerError)
		return
	}
	items := make([]appointmentPayload, 0, len(hits))
	for _, a := range hits {
		items = append(items, toPayload(a))
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CalendarHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cats, err := h.model.Categories(r.Context())
	if err != nil {
		http.Error(w, "failed to list categories", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": cats,
		"hidden":     h.model.HiddenCategories(),
	})
}

type categoryFilterRequest struct {
	Hidden []string `json:"hidden"`
}

func (h *CalendarHandler) SetCategoryFilter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req categoryFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if err := h.model.SetCategoryFilter(r.Context(), req.Hidden); err != nil {
		http.Error(w, "failed to apply filter", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type syncEntryItem struct {
	ID     int    `json:"id"`
	UID    string `json:"uid"`
	Object string `json:"object"`
	Action string `json:"action"`
}

// SyncPending exposes the queued change-log entries.
func (h *CalendarHandler) SyncPending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	entries, err := h.recon.Pending(r.Context())
	if err != nil {
		http.Error(w, "failed to read change log", http.StatusInternalServerError)
		return
	}
	items := make([]syncEntryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, syncEntryItem{
			ID:     e.ID,
			UID:    e.UID,
			Object: string(e.Object),
			Action: string(e.Action),
		})
	}
	writeJSON(w, http.StatusOK, items)
}

type syncEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// SyncEnabled reads or toggles change-log recording.
func (h *CalendarHandler) SyncEnabled(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, syncEnabledRequest{Enabled: h.recon.Enabled()})
	case http.MethodPost:
		var req syncEnabledRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		h.recon.SetEnabled(req.Enabled)
		writeJSON(w, http.StatusOK, syncEnabledRequest{Enabled: h.recon.Enabled()})
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// SyncReset clears the change log for a full re-export.
func (h *CalendarHandler) SyncReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.recon.Reset(r.Context()); err != nil {
		http.Error(w, "failed to reset change log", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Register wires every route onto the mux.
func (h *CalendarHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/v1/appointments/create", h.Create)
	mux.HandleFunc("/v1/appointments/get", h.Get)
	mux.HandleFunc("/v1/appointments/update", h.Update)
	mux.HandleFunc("/v1/appointments/delete", h.Delete)
	mux.HandleFunc("/v1/appointments/skip", h.SkipOccurrence)
	mux.HandleFunc("/v1/appointments/import", h.Import)
	mux.HandleFunc("/v1/days", h.Day)
	mux.HandleFunc("/v1/months", h.Month)
	mux.HandleFunc("/v1/todos", h.Todos)
	mux.HandleFunc("/v1/todos/complete", h.CompleteTodo)
	mux.HandleFunc("/v1/search", h.Search)
	mux.HandleFunc("/v1/categories", h.Categories)
	mux.HandleFunc("/v1/categories/filter", h.SetCategoryFilter)
	mux.HandleFunc("/v1/sync/pending", h.SyncPending)
	mux.HandleFunc("/v1/sync/enabled", h.SyncEnabled)
	mux.HandleFunc("/v1/sync/reset", h.SyncReset)
}

func intParam(r *http.Request, name string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
