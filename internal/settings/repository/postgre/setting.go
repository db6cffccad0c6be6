package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"venue-calendar/internal/settings/repository"
)

const (
	getSetting    = `SELECT value FROM settings WHERE key = $1`
	upsertSetting = `INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

func (r *implRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: key=%s: %v", r.dsn("Get"), key, err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return value, nil
}

func (r *implRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.db.Exec(ctx, upsertSetting, key, value); err != nil {
		r.l.Errorf(ctx, "%s: key=%s: %v", r.dsn("Set"), key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpsert, err)
	}
	return nil
}
