package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

// Memory is an in-process Store used by tests and DB-less runs. It
// maintains the repeating/todo indexes on every write, the same
// obligation the SQL store discharges with flag columns.
type Memory struct {
	mu      sync.RWMutex
	records map[int]*model.Appointment
}

func NewMemory() *Memory {
	return &Memory{records: map[int]*model.Appointment{}}
}

func (m *Memory) Create(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[a.ID]; exists {
		return fmt.Errorf("create %d: %w", a.ID, ErrDuplicateKey)
	}
	m.records[a.ID] = a.Clone()
	return nil
}

func (m *Memory) Read(_ context.Context, id int) (*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.records[id]
	if !ok {
		return nil, fmt.Errorf("read %d: %w", id, ErrNotFound)
	}
	return a.Clone(), nil
}

func (m *Memory) Update(_ context.Context, a *model.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[a.ID]; !ok {
		return fmt.Errorf("update %d: %w", a.ID, ErrNotFound)
	}
	m.records[a.ID] = a.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return fmt.Errorf("delete %d: %w", id, ErrNotFound)
	}
	delete(m.records, id)
	return nil
}

func (m *Memory) ScanAll(_ context.Context) ([]*model.Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*model.Appointment, 0, len(m.records))
	for _, a := range m.records {
		out = append(out, a.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) RepeatIDs(_ context.Context) (map[int]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := map[int]bool{}
	for id, a := range m.records {
		if a.Repeats() {
			ids[id] = true
		}
	}
	return ids, nil
}

func (m *Memory) TodoIDs(_ context.Context) ([]int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []int
	for id, a := range m.records {
		if a.Todo && !a.Deleted {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

var _ Store = (*Memory)(nil)
