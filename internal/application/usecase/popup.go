package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/domain/url"
	"github.com/bnema/dimmer/internal/logging"
)

// PopupState is what the popup shows when it opens.
type PopupState struct {
	Page        *entity.Page
	Domain      string
	Available   bool
	Global      entity.GlobalSettings
	SiteEnabled bool
	HasOverride bool
}

// PopupDeps groups the collaborators of PopupUseCase.
type PopupDeps struct {
	Repo       repository.SettingsRepository
	Pages      port.PageRegistry
	Messenger  port.PageMessenger
	Background port.BackgroundMessenger
	Documents  port.DocumentProvider
	Websites   *ManageWebsitesUseCase
	Styles     *StyleApplicator
	Privileged []string
}

// PopupUseCase backs the toolbar popup: the global switch, the switch for the
// active page's site and forced dark mode.
type PopupUseCase struct {
	deps PopupDeps
}

// NewPopupUseCase creates a new popup use case.
func NewPopupUseCase(deps PopupDeps) *PopupUseCase {
	if deps.Styles == nil {
		deps.Styles = NewStyleApplicator()
	}
	return &PopupUseCase{deps: deps}
}

// Load returns the popup state for the active page. On a storage failure the
// state is built from defaults and the error is returned alongside it.
func (uc *PopupUseCase) Load(ctx context.Context) (*PopupState, error) {
	settings, loadErr := loadSettings(ctx, uc.deps.Repo, entity.AllKeys())

	state := &PopupState{
		Global:      settings.Global,
		SiteEnabled: settings.Global.DarkModeEnabled,
	}

	page, err := uc.deps.Pages.ActivePage(ctx)
	if err != nil {
		return state, fmt.Errorf("failed to find active page: %w", err)
	}
	state.Page = page

	if page != nil {
		if domain, err := url.PageDomain(page.URL, uc.deps.Privileged); err == nil {
			state.Domain = domain
			state.Available = true
			if site, ok := settings.Websites[domain]; ok {
				state.SiteEnabled = site.DarkModeEnabled
				state.HasOverride = true
			}
		}
	}

	return state, loadErr
}

// ToggleGlobal asks the background to switch dark mode everywhere. If the
// background does not confirm, the popup saves the flag itself and updates
// only the active page.
func (uc *PopupUseCase) ToggleGlobal(ctx context.Context, enabled bool) (string, error) {
	log := logging.FromContext(ctx)

	current, _ := loadSettings(ctx, uc.deps.Repo, []entity.SettingKey{entity.KeyDarkModeIntensity})
	msg := entity.SetGlobalDarkMode{Enabled: enabled, Intensity: current.Global.DarkModeIntensity}

	resp, err := uc.deps.Background.SendToBackground(ctx, "", msg)
	if err == nil && resp != nil && resp.Success {
		return fmt.Sprintf("Dark mode %s globally", onOff(enabled)), nil
	}
	log.Warn().Err(err).Interface("response", resp).Msg("background did not confirm, saving locally")

	if err := uc.deps.Repo.Set(ctx, map[entity.SettingKey]any{entity.KeyDarkModeEnabled: enabled}); err != nil {
		return "", fmt.Errorf("failed to toggle dark mode: %w", err)
	}

	saved := fmt.Sprintf("Dark mode setting saved (%s)", onOff(enabled))
	page, err := uc.activeStylablePage(ctx)
	if err != nil {
		return saved, nil
	}
	if err := uc.sendToggle(ctx, page.ID, enabled); err != nil {
		log.Debug().Err(err).Msg("active page not updated")
		return saved, nil
	}
	return fmt.Sprintf("Dark mode %s", onOff(enabled)), nil
}

// ToggleSite stores an override for the active page's domain and updates that page.
func (uc *PopupUseCase) ToggleSite(ctx context.Context, enabled bool) (string, error) {
	page, err := uc.activeStylablePage(ctx)
	if err != nil {
		return "", err
	}

	domain, err := url.PageDomain(page.URL, uc.deps.Privileged)
	if err != nil {
		return "", err
	}

	if err := uc.deps.Websites.Set(ctx, domain, enabled); err != nil {
		return "", err
	}

	if err := uc.sendToggle(ctx, page.ID, enabled); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("domain", domain).Msg("page not updated")
		return fmt.Sprintf("Setting saved for %s", domain), nil
	}
	return fmt.Sprintf("Dark mode %s for %s", onOff(enabled), domain), nil
}

// ForceDarkMode injects the forced sheet straight into the active page.
func (uc *PopupUseCase) ForceDarkMode(ctx context.Context) (string, error) {
	page, err := uc.activeStylablePage(ctx)
	if err != nil {
		return "", err
	}

	doc, err := uc.deps.Documents.Document(ctx, page.ID)
	if err != nil {
		return "", fmt.Errorf("failed to reach page: %w", err)
	}
	if err := uc.deps.Styles.ApplyAggressive(ctx, doc); err != nil {
		return "", err
	}
	return "Aggressive dark mode applied!", nil
}

// activeStylablePage returns the active page, or entity.ErrUnsupportedSurface
// when there is none or it is a privileged page.
func (uc *PopupUseCase) activeStylablePage(ctx context.Context) (*entity.Page, error) {
	page, err := uc.deps.Pages.ActivePage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find active page: %w", err)
	}
	if page == nil || page.URL == "" {
		return nil, fmt.Errorf("%w: unable to access this page", entity.ErrUnsupportedSurface)
	}
	if url.IsPrivileged(page.URL, uc.deps.Privileged) {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnsupportedSurface, url.Scheme(page.URL))
	}
	return page, nil
}

func (uc *PopupUseCase) sendToggle(ctx context.Context, id entity.PageID, enabled bool) error {
	resp, err := uc.deps.Messenger.SendToPage(ctx, id, entity.ToggleDarkMode{Enabled: enabled})
	if err != nil {
		return err
	}
	if resp != nil && !resp.Success {
		return &entity.DeliveryError{PageID: id, Err: errors.New(resp.Error)}
	}
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
