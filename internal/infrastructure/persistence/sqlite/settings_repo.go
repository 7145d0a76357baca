package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

const upsertSettingSQL = `INSERT INTO settings (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed settings store.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(
	ctx context.Context,
	keys []entity.SettingKey,
) (map[entity.SettingKey]json.RawMessage, error) {
	log := logging.FromContext(ctx)
	log.Debug().Int("keys", len(keys)).Msg("reading settings")

	values := make(map[entity.SettingKey]json.RawMessage, len(keys))
	if len(keys) == 0 {
		return values, nil
	}

	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = string(k)
	}
	query := "SELECT key, value FROM settings WHERE key IN (?" + strings.Repeat(", ?", len(keys)-1) + ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &entity.StorageError{Op: "get", Keys: keys, Err: err}
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, &entity.StorageError{Op: "get", Keys: keys, Err: err}
		}
		values[entity.SettingKey(key)] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.StorageError{Op: "get", Keys: keys, Err: err}
	}

	return values, nil
}

func (r *settingsRepo) Set(ctx context.Context, values map[entity.SettingKey]any) error {
	keys := make([]entity.SettingKey, 0, len(values))
	encoded := make(map[entity.SettingKey]string, len(values))
	for k, v := range values {
		keys = append(keys, k)
		b, err := json.Marshal(v)
		if err != nil {
			return &entity.StorageError{Op: "set", Keys: []entity.SettingKey{k}, Err: err}
		}
		encoded[k] = string(b)
	}

	log := logging.FromContext(ctx)
	log.Debug().Int("keys", len(keys)).Msg("writing settings")

	if len(encoded) == 0 {
		return nil
	}

	if err := r.write(ctx, encoded); err != nil {
		return &entity.StorageError{Op: "set", Keys: keys, Err: err}
	}
	return nil
}

func (r *settingsRepo) write(ctx context.Context, encoded map[entity.SettingKey]string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertSettingSQL)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for k, v := range encoded {
		if _, err := stmt.ExecContext(ctx, string(k), v); err != nil {
			return fmt.Errorf("failed to write %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
