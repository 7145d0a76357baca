package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// InitializeSettingsUseCase seeds the store on first run.
type InitializeSettingsUseCase struct {
	repo repository.SettingsRepository
	now  func() time.Time
}

// NewInitializeSettingsUseCase creates a new install-time initializer.
func NewInitializeSettingsUseCase(repo repository.SettingsRepository) *InitializeSettingsUseCase {
	return &InitializeSettingsUseCase{repo: repo, now: defaultNow}
}

// WithClock replaces the time source used for installationDate.
func (uc *InitializeSettingsUseCase) WithClock(now func() time.Time) *InitializeSettingsUseCase {
	uc.now = now
	return uc
}

// Execute writes extensionEnabled, darkModeEnabled and installationDate for
// every key not stored yet. Existing values are kept. It reports whether this
// was a fresh install.
func (uc *InitializeSettingsUseCase) Execute(ctx context.Context) (bool, error) {
	log := logging.FromContext(ctx)

	keys := []entity.SettingKey{
		entity.KeyExtensionEnabled,
		entity.KeyDarkModeEnabled,
		entity.KeyInstallationDate,
	}
	stored, err := uc.repo.Get(ctx, keys)
	if err != nil {
		return false, fmt.Errorf("failed to read install state: %w", err)
	}

	defaults := map[entity.SettingKey]any{
		entity.KeyExtensionEnabled: true,
		entity.KeyDarkModeEnabled:  false,
		entity.KeyInstallationDate: uc.now(),
	}

	missing := make(map[entity.SettingKey]any, len(defaults))
	for key, value := range defaults {
		if _, ok := stored[key]; !ok {
			missing[key] = value
		}
	}
	if len(missing) == 0 {
		log.Debug().Msg("settings already initialized")
		return false, nil
	}

	if err := uc.repo.Set(ctx, missing); err != nil {
		return false, fmt.Errorf("failed to initialize settings: %w", err)
	}

	_, hadDate := stored[entity.KeyInstallationDate]
	log.Info().Int("keys", len(missing)).Bool("fresh", !hadDate).Msg("settings initialized")
	return !hadDate, nil
}
