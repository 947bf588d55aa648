package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/daybook-cal/daybook/libs/db"
)

// UserRepository resolves login credentials.
//
// Schema:
//
//	CREATE TABLE users (
//		username      TEXT PRIMARY KEY,
//		password_hash TEXT NOT NULL,
//		role          TEXT NOT NULL DEFAULT 'owner',
//		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type UserRepository struct {
	pool *db.Pool
}

func NewUserRepository(pool *db.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Lookup returns empty strings for an unknown user; the caller treats
// that the same as a bad password.
func (r *UserRepository) Lookup(ctx context.Context, username string) (string, string, error) {
	var hash, role string
	err := r.pool.QueryRow(ctx, `
		SELECT password_hash, role FROM users WHERE username = $1
	`, username).Scan(&hash, &role)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("lookup user: %w", err)
	}
	return hash, role, nil
}
