package usecase

import (
	"context"

	"github.com/bnema/dimmer/internal/domain/darkmode"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

// PageState is the resolved state of one page along with why it resolved so.
type PageState struct {
	URL      string
	Domain   string
	State    entity.EffectiveState
	Override *entity.WebsiteSetting
	Global   entity.GlobalSettings
}

// ResolvePageStateUseCase answers "should this page be dark right now".
type ResolvePageStateUseCase struct {
	repo       repository.SettingsRepository
	privileged []string
}

// NewResolvePageStateUseCase creates a new page state resolver.
func NewResolvePageStateUseCase(repo repository.SettingsRepository, privileged []string) *ResolvePageStateUseCase {
	return &ResolvePageStateUseCase{repo: repo, privileged: privileged}
}

// Execute resolves the state of the page at rawURL.
// Privileged pages return entity.ErrUnsupportedSurface. A storage read
// failure resolves against the defaults.
func (uc *ResolvePageStateUseCase) Execute(ctx context.Context, rawURL string) (*PageState, error) {
	log := logging.FromContext(ctx)

	settings, err := loadSettings(ctx, uc.repo, entity.AllKeys())
	if err != nil {
		log.Warn().Err(err).Str("url", rawURL).Msg("resolving page against defaults")
	}

	return uc.resolve(rawURL, settings)
}

// ExecuteWith resolves against an already loaded snapshot.
func (uc *ResolvePageStateUseCase) ExecuteWith(rawURL string, settings entity.Settings) (*PageState, error) {
	return uc.resolve(rawURL, settings)
}

func (uc *ResolvePageStateUseCase) resolve(rawURL string, settings entity.Settings) (*PageState, error) {
	state, domain, err := darkmode.ResolveURL(rawURL, settings, uc.privileged)
	if err != nil {
		return nil, err
	}

	ps := &PageState{
		URL:    rawURL,
		Domain: domain,
		State:  state,
		Global: settings.Global,
	}
	if site, ok := settings.Websites[domain]; ok && domain != "" {
		ps.Override = &site
	}
	return ps, nil
}
