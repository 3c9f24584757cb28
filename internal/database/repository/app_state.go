package repository

import (
	"context"
	"database/sql"
	"time"
)

// AppStateRepo handles app_state key/value rows.
type AppStateRepo struct {
	db *sql.DB
}

func NewAppStateRepo(db *sql.DB) *AppStateRepo { return &AppStateRepo{db: db} }

func (r *AppStateRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO app_state(key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at;
	`, key, value, time.Now().UTC().Truncate(time.Second))
	return err
}

func (r *AppStateRepo) Get(ctx context.Context, key string) (*AppState, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM app_state WHERE key = ?`, key)
	var s AppState
	if err := row.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *AppStateRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	return err
}

func (r *AppStateRepo) List(ctx context.Context) ([]AppState, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM app_state ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []AppState
	for rows.Next() {
		var s AppState
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
