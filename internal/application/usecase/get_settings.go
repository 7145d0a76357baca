package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// GetSettingsUseCase reads a snapshot of the stored settings.
type GetSettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewGetSettingsUseCase creates a new settings reader.
func NewGetSettingsUseCase(repo repository.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{repo: repo}
}

// Execute returns the stored settings. When the store cannot be read it returns
// the defaults together with the storage error, so callers can keep working
// and still report the failure.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (entity.Settings, error) {
	return loadSettings(ctx, uc.repo, entity.AllKeys())
}

// loadSettings overlays the stored values of keys onto the defaults.
func loadSettings(
	ctx context.Context,
	repo repository.SettingsRepository,
	keys []entity.SettingKey,
) (entity.Settings, error) {
	log := logging.FromContext(ctx)
	settings := entity.DefaultSettings()

	values, err := repo.Get(ctx, keys)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read settings, using defaults")
		return settings, fmt.Errorf("failed to read settings: %w", err)
	}

	if invalid := settings.ApplyValues(values); len(invalid) > 0 {
		log.Warn().Interface("keys", invalid).Msg("ignoring undecodable settings")
	}

	return settings, nil
}

// loadWebsites reads the override map for a read-modify-write.
// Unlike loadSettings it never falls back: writing back defaults would drop every
// entry, and writing back a partly decoded map would rewrite corrupt entries.
func loadWebsites(ctx context.Context, repo repository.SettingsRepository) (entity.WebsiteSettings, error) {
	keys := []entity.SettingKey{entity.KeyWebsiteSettings}
	values, err := repo.Get(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to read website settings: %w", err)
	}

	sites := entity.WebsiteSettings{}
	raw, ok := values[entity.KeyWebsiteSettings]
	if !ok {
		return sites, nil
	}
	if err := json.Unmarshal(raw, &sites); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("stored website settings are corrupt")
		return nil, &entity.StorageError{Op: "get", Keys: keys, Err: fmt.Errorf("corrupt value: %w", err)}
	}
	if sites == nil {
		sites = entity.WebsiteSettings{}
	}
	return sites, nil
}

func defaultNow() time.Time {
	return time.Now().UTC()
}
