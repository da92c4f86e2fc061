package postgres

import (
	"context"
	"database/sql"
	"errors"
)

type PrefsRepo struct {
	db *sql.DB
}

func NewPrefsRepo(db *sql.DB) *PrefsRepo {
	return &PrefsRepo{db: db}
}

func (r *PrefsRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = $1`, key,
	).Scan(&raw)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (r *PrefsRepo) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	return err
}
