package repository

import (
	"context"
	"encoding/json"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// SettingsRepository is the durable key/value settings store.
// There is no locking across calls; the last Set to commit wins.
type SettingsRepository interface {
	// Get returns the stored JSON values for keys. Keys never written are omitted.
	// Failures are *entity.StorageError.
	Get(ctx context.Context, keys []entity.SettingKey) (map[entity.SettingKey]json.RawMessage, error)

	// Set writes every value atomically. Values must be JSON-serializable.
	// Failures are *entity.StorageError.
	Set(ctx context.Context, values map[entity.SettingKey]any) error
}
