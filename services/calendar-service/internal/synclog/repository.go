package synclog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook-cal/daybook/libs/db"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
)

// Repository is the Postgres Store.
//
// Schema:
//
//	CREATE TABLE syncmap (
//		id          BIGINT NOT NULL,
//		uid         TEXT NOT NULL DEFAULT '',
//		objtype     TEXT NOT NULL,
//		action      TEXT NOT NULL,
//		traceparent TEXT NOT NULL DEFAULT '',
//		tracestate  TEXT NOT NULL DEFAULT '',
//		PRIMARY KEY (id, objtype)
//	);
type Repository struct {
	pool *db.Pool
}

func NewRepository(pool *db.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Get(ctx context.Context, id int, object model.ObjectType) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, uid, objtype, action, traceparent, tracestate
		FROM syncmap
		WHERE id = $1 AND objtype = $2
	`, id, string(object))
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("get %d/%s: %w", id, object, ErrNotFound)
		}
		return nil, fmt.Errorf("get %d/%s: %w", id, object, err)
	}
	return e, nil
}

// Insert upserts: the log holds at most one entry per (id, objtype).
func (r *Repository) Insert(ctx context.Context, e *Entry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO syncmap (id, uid, objtype, action, traceparent, tracestate)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id, objtype) DO UPDATE
		SET uid = EXCLUDED.uid,
			action = EXCLUDED.action,
			traceparent = EXCLUDED.traceparent,
			tracestate = EXCLUDED.tracestate
	`, e.ID, e.UID, string(e.Object), string(e.Action), e.Traceparent, e.Tracestate)
	if err != nil {
		return fmt.Errorf("insert %d/%s: %w", e.ID, e.Object, err)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int, object model.ObjectType) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM syncmap WHERE id = $1 AND objtype = $2
	`, id, string(object))
	if err != nil {
		return fmt.Errorf("delete %d/%s: %w", id, object, err)
	}
	return nil
}

func (r *Repository) All(ctx context.Context) ([]*Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, uid, objtype, action, traceparent, tracestate
		FROM syncmap
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("scan syncmap: %w", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan syncmap: %w", err)
		}
		out = append(out, e)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("scan syncmap: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM syncmap`); err != nil {
		return fmt.Errorf("clear syncmap: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var (
		e       Entry
		id      int64
		objtype string
		action  string
	)
	if err := row.Scan(&id, &e.UID, &objtype, &action, &e.Traceparent, &e.Tracestate); err != nil {
		return nil, err
	}
	e.ID = int(id)
	e.Object = model.ObjectType(objtype)
	e.Action = model.ChangeAction(action)
	return &e, nil
}

var _ Store = (*Repository)(nil)
var _ Store = (*Memory)(nil)
