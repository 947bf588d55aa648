package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/daybook-cal/daybook/libs/db"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/model"
	"github.com/daybook-cal/daybook/services/calendar-service/internal/store"
)

// AppointmentRepository is the Postgres record store.
//
// Schema:
//
//	CREATE TABLE appointments (
//		id         BIGINT PRIMARY KEY,
//		appt_date  TIMESTAMPTZ NOT NULL,
//		duration   INT NOT NULL DEFAULT 0,
//		body       TEXT NOT NULL DEFAULT '',
//		category   TEXT NOT NULL DEFAULT '',
//		frequency  TEXT NOT NULL DEFAULT '',
//		times      INT NOT NULL DEFAULT 1,
//		skip_list  BIGINT[] NOT NULL DEFAULT '{}',
//		todo       BOOLEAN NOT NULL DEFAULT FALSE,
//		next_todo  TIMESTAMPTZ,
//		color      TEXT NOT NULL DEFAULT '',
//		deleted    BOOLEAN NOT NULL DEFAULT FALSE,
//		private    BOOLEAN NOT NULL DEFAULT FALSE,
//		uid        TEXT NOT NULL DEFAULT '',
//		url        TEXT NOT NULL DEFAULT '',
//		repeating  BOOLEAN NOT NULL DEFAULT FALSE,
//		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
//	CREATE INDEX appointments_repeating_idx ON appointments (id) WHERE repeating;
//	CREATE INDEX appointments_todo_idx ON appointments (id) WHERE todo AND NOT deleted;
//
// The repeating flag is maintained on every write so RepeatIDs is an
// index read, never a recomputation.
type AppointmentRepository struct {
	pool *db.Pool
}

func NewAppointmentRepository(pool *db.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const apptColumns = `id, appt_date, duration, body, category, frequency, times, skip_list,
	todo, next_todo, color, deleted, private, uid, url, created_at`

func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO appointments
			(id, appt_date, duration, body, category, frequency, times, skip_list,
			 todo, next_todo, color, deleted, private, uid, url, repeating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, a.ID, a.Date, a.Duration, a.Text, a.Category, a.Frequency, a.Times, toInt64s(a.SkipList),
		a.Todo, a.NextTodo, a.Color, a.Deleted, a.Private, a.UID, a.URL, a.Repeats())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create %d: %w", a.ID, store.ErrDuplicateKey)
		}
		return fmt.Errorf("create %d: %w", a.ID, err)
	}
	return nil
}

func (r *AppointmentRepository) Read(ctx context.Context, id int) (*model.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+apptColumns+`
		FROM appointments
		WHERE id = $1
	`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("read %d: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("read %d: %w", id, err)
	}
	return a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *model.Appointment) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET appt_date = $2,
			duration = $3,
			body = $4,
			category = $5,
			frequency = $6,
			times = $7,
			skip_list = $8,
			todo = $9,
			next_todo = $10,
			color = $11,
			deleted = $12,
			private = $13,
			uid = $14,
			url = $15,
			repeating = $16
		WHERE id = $1
	`, a.ID, a.Date, a.Duration, a.Text, a.Category, a.Frequency, a.Times, toInt64s(a.SkipList),
		a.Todo, a.NextTodo, a.Color, a.Deleted, a.Private, a.UID, a.URL, a.Repeats())
	if err != nil {
		return fmt.Errorf("update %d: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %d: %w", a.ID, store.ErrNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func (r *AppointmentRepository) ScanAll(ctx context.Context) ([]*model.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+apptColumns+`
		FROM appointments
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("scan appointments: %w", err)
	}
	defer rows.Close()

	appts := []*model.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointments: %w", err)
		}
		appts = append(appts, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("scan appointments: %w", rows.Err())
	}
	return appts, nil
}

func (r *AppointmentRepository) RepeatIDs(ctx context.Context) (map[int]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM appointments WHERE repeating`)
	if err != nil {
		return nil, fmt.Errorf("repeat ids: %w", err)
	}
	defer rows.Close()

	ids := map[int]bool{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repeat ids: %w", err)
		}
		ids[int(id)] = true
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("repeat ids: %w", rows.Err())
	}
	return ids, nil
}

func (r *AppointmentRepository) TodoIDs(ctx context.Context) ([]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM appointments WHERE todo AND NOT deleted ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("todo ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("todo ids: %w", err)
		}
		ids = append(ids, int(id))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("todo ids: %w", rows.Err())
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAppointment(row rowScanner) (*model.Appointment, error) {
	var (
		a        model.Appointment
		id       int64
		skip     []int64
		nextTodo *time.Time
	)
	err := row.Scan(
		&id,
		&a.Date,
		&a.Duration,
		&a.Text,
		&a.Category,
		&a.Frequency,
		&a.Times,
		&skip,
		&a.Todo,
		&nextTodo,
		&a.Color,
		&a.Deleted,
		&a.Private,
		&a.UID,
		&a.URL,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ID = int(id)
	a.SkipList = toInts(skip)
	a.NextTodo = nextTodo
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func toInt64s(in []int) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

func toInts(in []int64) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

var _ store.Store = (*AppointmentRepository)(nil)
