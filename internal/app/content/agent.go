// Package content is the per-page agent. It owns one document and applies or
// removes the dark style when told to.
package content

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/infrastructure/messaging"
	"github.com/bnema/dimmer/internal/logging"
)

// Host is the part of the page host an agent talks to.
type Host interface {
	port.BackgroundMessenger
	Attach(id entity.PageID, router *messaging.Router) error
}

// Agent is the content-side listener of one page.
type Agent struct {
	id       entity.PageID
	url      string
	doc      port.Document
	host     Host
	settings *usecase.GetSettingsUseCase
	resolve  *usecase.ResolvePageStateUseCase
	styles   *usecase.StyleApplicator
	router   *messaging.Router
}

// NewAgent creates the agent for page id showing rawURL.
func NewAgent(
	id entity.PageID,
	rawURL string,
	doc port.Document,
	repo repository.SettingsRepository,
	host Host,
	privileged []string,
) *Agent {
	return &Agent{
		id:       id,
		url:      rawURL,
		doc:      doc,
		host:     host,
		settings: usecase.NewGetSettingsUseCase(repo),
		resolve:  usecase.NewResolvePageStateUseCase(repo, privileged),
		styles:   usecase.NewStyleApplicator(),
		router:   messaging.NewRouter("page-" + string(id)),
	}
}

// Attach registers the agent's listener on the host. Until then messages to
// the page fail with a DeliveryError.
func (a *Agent) Attach() error {
	if err := a.router.RegisterHandler(entity.KindToggleDarkMode, messaging.HandlerFunc(a.handleToggle)); err != nil {
		return err
	}
	if err := a.host.Attach(a.id, a.router); err != nil {
		return fmt.Errorf("failed to attach content agent: %w", err)
	}
	return nil
}

// Load announces the agent to the background and applies the page's
// resolved state. Privileged pages are left untouched.
func (a *Agent) Load(ctx context.Context) error {
	ctx = logging.WithURL(logging.WithPageID(logging.WithComponent(ctx, "content"), string(a.id)), a.url)
	log := logging.FromContext(ctx)

	if _, err := a.host.SendToBackground(ctx, a.id, entity.ContentScriptLoaded{URL: a.url}); err != nil {
		log.Debug().Err(err).Msg("background not listening")
	}

	ps, err := a.resolve.Execute(ctx, a.url)
	if err != nil {
		log.Debug().Err(err).Msg("page not styled")
		return nil
	}
	if !ps.State.Enabled {
		return nil
	}
	return a.styles.Apply(ctx, a.doc, ps.State.Intensity)
}

func (a *Agent) handleToggle(ctx context.Context, _ entity.PageID, msg entity.Message) (*entity.Response, error) {
	toggle := msg.(entity.ToggleDarkMode)
	ctx = logging.WithPageID(logging.WithComponent(ctx, "content"), string(a.id))
	log := logging.FromContext(ctx)

	var err error
	if toggle.Enabled {
		// Intensity is read now so a changed tier repaints on the next toggle.
		settings, readErr := a.settings.Execute(ctx)
		if readErr != nil {
			log.Warn().Err(readErr).Msg("applying default intensity")
		}
		err = a.styles.Apply(ctx, a.doc, settings.Global.DarkModeIntensity)
	} else {
		err = a.styles.Remove(ctx, a.doc)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to toggle dark mode")
		return entity.Fail("Failed to toggle dark mode"), nil
	}
	return entity.OK("Dark mode toggled"), nil
}
