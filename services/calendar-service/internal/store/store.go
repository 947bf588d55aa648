// Package store defines the record-store contract the calendar model
// depends on. Implementations must report "not found" via ErrNotFound
// so callers can treat it as an empty result rather than a fault, and
// key collisions via ErrDuplicateKey so import paths can retry with
// the next candidate key.
package store

import (
	"context"
	"errors"

	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate record key")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// Store is a keyed object store for appointment records. Besides CRUD
// and a full scan it maintains two auxiliary indexes — the set of
// repeating record ids and the set of todo-flagged ids — so the day
// index never recomputes them.
type Store interface {
	Create(ctx context.Context, a *model.Appointment) error
	Read(ctx context.Context, id int) (*model.Appointment, error)
	Update(ctx context.Context, a *model.Appointment) error
	Delete(ctx context.Context, id int) error

	// ScanAll returns every record, including soft-deleted ones; an
	// empty store yields an empty slice, not an error.
	ScanAll(ctx context.Context) ([]*model.Appointment, error)

	RepeatIDs(ctx context.Context) (map[int]bool, error)
	TodoIDs(ctx context.Context) ([]int, error)
}
