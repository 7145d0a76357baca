package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// SetGlobalDarkModeUseCase drives the global Off/On(intensity) state.
// Every transition persists first and broadcasts second; a failed write
// aborts the transition before any page is messaged.
type SetGlobalDarkModeUseCase struct {
	repo      repository.SettingsRepository
	broadcast *BroadcastUseCase
}

// NewSetGlobalDarkModeUseCase creates a new global dark mode use case.
func NewSetGlobalDarkModeUseCase(
	repo repository.SettingsRepository,
	broadcast *BroadcastUseCase,
) *SetGlobalDarkModeUseCase {
	return &SetGlobalDarkModeUseCase{repo: repo, broadcast: broadcast}
}

// Execute persists the global flag and intensity, then broadcasts.
// An empty intensity means entity.DefaultIntensity.
func (uc *SetGlobalDarkModeUseCase) Execute(
	ctx context.Context,
	enabled bool,
	intensity entity.Intensity,
) (*BroadcastReport, error) {
	log := logging.FromContext(ctx)
	intensity = intensity.OrDefault()

	err := uc.repo.Set(ctx, map[entity.SettingKey]any{
		entity.KeyDarkModeEnabled:   enabled,
		entity.KeyDarkModeIntensity: intensity,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save dark mode setting: %w", err)
	}

	log.Info().Bool("enabled", enabled).Str("intensity", intensity.String()).Msg("global dark mode saved")

	snapshot := entity.DefaultSettings()
	snapshot.Global.DarkModeEnabled = enabled
	snapshot.Global.DarkModeIntensity = intensity
	return uc.broadcastWith(ctx, snapshot)
}

// Toggle flips the global flag, keeping the stored intensity.
// It returns the new enabled value.
func (uc *SetGlobalDarkModeUseCase) Toggle(ctx context.Context) (bool, *BroadcastReport, error) {
	current, err := loadSettings(ctx, uc.repo, []entity.SettingKey{
		entity.KeyDarkModeEnabled,
		entity.KeyDarkModeIntensity,
	})
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("toggling from default state")
	}

	enabled := !current.Global.DarkModeEnabled
	report, err := uc.Execute(ctx, enabled, current.Global.DarkModeIntensity)
	if err != nil {
		return current.Global.DarkModeEnabled, nil, err
	}
	return enabled, report, nil
}

// ChangeIntensity stores a new intensity and re-broadcasts so pages that are
// currently dark repaint with the new palette.
func (uc *SetGlobalDarkModeUseCase) ChangeIntensity(
	ctx context.Context,
	intensity entity.Intensity,
) (*BroadcastReport, error) {
	if !intensity.IsValid() {
		return nil, fmt.Errorf("unknown intensity %q", intensity)
	}

	if err := uc.repo.Set(ctx, map[entity.SettingKey]any{entity.KeyDarkModeIntensity: intensity}); err != nil {
		return nil, fmt.Errorf("failed to save intensity: %w", err)
	}

	logging.FromContext(ctx).Info().Str("intensity", intensity.String()).Msg("intensity saved")

	return uc.Rebroadcast(ctx)
}

// Rebroadcast pushes the currently stored state to every page.
// Unlike Toggle it does not fall back to defaults on a read error: it has no
// state of its own to push, and broadcasting defaults would turn every dark
// page light. The storage error is returned and no page is messaged.
func (uc *SetGlobalDarkModeUseCase) Rebroadcast(ctx context.Context) (*BroadcastReport, error) {
	snapshot, err := loadSettings(ctx, uc.repo, []entity.SettingKey{
		entity.KeyDarkModeEnabled,
		entity.KeyDarkModeIntensity,
	})
	if err != nil {
		return nil, err
	}
	return uc.broadcastWith(ctx, snapshot)
}

// broadcastWith fills in the current overrides and broadcasts. A failed
// override read broadcasts the global state alone.
func (uc *SetGlobalDarkModeUseCase) broadcastWith(ctx context.Context, snapshot entity.Settings) (*BroadcastReport, error) {
	sites, err := loadWebsites(ctx, uc.repo)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("broadcasting without website overrides")
		sites = entity.WebsiteSettings{}
	}
	snapshot.Websites = sites

	report, err := uc.broadcast.Broadcast(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to notify pages: %w", err)
	}
	return report, nil
}
