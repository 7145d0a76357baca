package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// OptionsForm is the editable part of the options page.
type OptionsForm struct {
	ExtensionEnabled  bool
	DarkModeEnabled   bool
	DarkModeIntensity entity.Intensity
	AutoApplyDarkMode bool
}

// FormFromSettings fills a form from a snapshot.
func FormFromSettings(s entity.GlobalSettings) OptionsForm {
	return OptionsForm{
		ExtensionEnabled:  s.ExtensionEnabled,
		DarkModeEnabled:   s.DarkModeEnabled,
		DarkModeIntensity: s.DarkModeIntensity.OrDefault(),
		AutoApplyDarkMode: s.AutoApplyDarkMode,
	}
}

// OptionsUseCase backs the options page: bulk save, reset and website exceptions.
type OptionsUseCase struct {
	repo       repository.SettingsRepository
	background port.BackgroundMessenger
	websites   *ManageWebsitesUseCase
	now        func() time.Time
}

// NewOptionsUseCase creates a new options page use case.
func NewOptionsUseCase(
	repo repository.SettingsRepository,
	background port.BackgroundMessenger,
	websites *ManageWebsitesUseCase,
) *OptionsUseCase {
	return &OptionsUseCase{
		repo:       repo,
		background: background,
		websites:   websites,
		now:        defaultNow,
	}
}

// WithClock replaces the time source used for lastUpdated.
func (uc *OptionsUseCase) WithClock(now func() time.Time) *OptionsUseCase {
	uc.now = now
	return uc
}

// Load returns the stored settings, or the defaults plus the read error.
func (uc *OptionsUseCase) Load(ctx context.Context) (entity.Settings, error) {
	return loadSettings(ctx, uc.repo, entity.AllKeys())
}

// SaveAll writes the whole form plus lastUpdated, then tells the background.
func (uc *OptionsUseCase) SaveAll(ctx context.Context, form OptionsForm) error {
	log := logging.FromContext(ctx)

	values := map[entity.SettingKey]any{
		entity.KeyExtensionEnabled:  form.ExtensionEnabled,
		entity.KeyDarkModeEnabled:   form.DarkModeEnabled,
		entity.KeyDarkModeIntensity: form.DarkModeIntensity.OrDefault(),
		entity.KeyAutoApplyDarkMode: form.AutoApplyDarkMode,
		entity.KeyLastUpdated:       uc.now(),
	}
	if err := uc.repo.Set(ctx, values); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Info().Msg("options saved")
	uc.notify(ctx, values)
	return nil
}

// ResetToDefault restores the four user preferences. Website exceptions are kept.
func (uc *OptionsUseCase) ResetToDefault(ctx context.Context) error {
	values := map[entity.SettingKey]any{
		entity.KeyExtensionEnabled:  true,
		entity.KeyDarkModeEnabled:   false,
		entity.KeyDarkModeIntensity: entity.DefaultIntensity,
		entity.KeyAutoApplyDarkMode: true,
	}
	if err := uc.repo.Set(ctx, values); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	logging.FromContext(ctx).Info().Msg("settings reset to default")
	uc.notify(ctx, values)
	return nil
}

// AddWebsiteException validates input and stores the override.
func (uc *OptionsUseCase) AddWebsiteException(ctx context.Context, input string, enabled bool) (string, error) {
	return uc.websites.AddException(ctx, input, enabled)
}

// RemoveWebsiteException deletes the override for domain.
func (uc *OptionsUseCase) RemoveWebsiteException(ctx context.Context, domain string) error {
	return uc.websites.Remove(ctx, domain)
}

// ListWebsiteExceptions returns every override sorted by domain.
func (uc *OptionsUseCase) ListWebsiteExceptions(ctx context.Context) ([]WebsiteEntry, error) {
	return uc.websites.List(ctx)
}

// notify sends settingsUpdated. Settings are already saved, so a missing
// background only costs the live repaint.
func (uc *OptionsUseCase) notify(ctx context.Context, values map[entity.SettingKey]any) {
	if uc.background == nil {
		return
	}
	if _, err := uc.background.SendToBackground(ctx, "", entity.SettingsUpdated{Settings: values}); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("background did not receive settings update")
	}
}
