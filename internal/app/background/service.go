// Package background is the long-lived coordinator: it seeds the store on
// install, answers popup and options messages and pushes state to pages.
package background

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/messaging"
	"github.com/bnema/dimmer/internal/logging"
)

// CommandToggleDarkMode is the keyboard command that flips the global state.
const CommandToggleDarkMode = "toggle-dark-mode"

// Service wires the background use cases to its message router.
type Service struct {
	initialize *usecase.InitializeSettingsUseCase
	global     *usecase.SetGlobalDarkModeUseCase
	resolve    *usecase.ResolvePageStateUseCase
	messenger  port.PageMessenger
	router     *messaging.Router
}

// Deps groups the collaborators of Service.
type Deps struct {
	Initialize *usecase.InitializeSettingsUseCase
	Global     *usecase.SetGlobalDarkModeUseCase
	Resolve    *usecase.ResolvePageStateUseCase
	Messenger  port.PageMessenger
}

// NewService creates the background service and registers its handlers.
func NewService(deps Deps) (*Service, error) {
	s := &Service{
		initialize: deps.Initialize,
		global:     deps.Global,
		resolve:    deps.Resolve,
		messenger:  deps.Messenger,
		router:     messaging.NewRouter("background"),
	}

	handlers := map[entity.MessageKind]messaging.HandlerFunc{
		entity.KindSetGlobalDarkMode:   s.handleSetGlobalDarkMode,
		entity.KindSettingsUpdated:     s.handleSettingsUpdated,
		entity.KindContentScriptLoaded: s.handleContentScriptLoaded,
	}
	for kind, h := range handlers {
		if err := s.router.RegisterHandler(kind, h); err != nil {
			return nil, fmt.Errorf("failed to register %s handler: %w", kind, err)
		}
	}
	return s, nil
}

// Router returns the router to install on the page host.
func (s *Service) Router() *messaging.Router {
	return s.router
}

// Install seeds default settings on first run.
func (s *Service) Install(ctx context.Context) error {
	ctx = logging.WithComponent(ctx, "background")
	fresh, err := s.initialize.Execute(ctx)
	if err != nil {
		return err
	}
	if fresh {
		logging.FromContext(ctx).Info().Msg("extension installed")
	}
	return nil
}

// HandleCommand runs a keyboard command. Unknown commands are ignored.
func (s *Service) HandleCommand(ctx context.Context, command string) error {
	ctx = logging.WithComponent(ctx, "background")
	if command != CommandToggleDarkMode {
		logging.FromContext(ctx).Debug().Str("command", command).Msg("ignoring unknown command")
		return nil
	}

	enabled, _, err := s.global.Toggle(ctx)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info().Bool("enabled", enabled).Msg("dark mode toggled from keyboard")
	return nil
}

// OnPageLoaded pushes the resolved state to a page that finished loading.
// Only enabling is sent: a fresh page is light already. Failures are dropped
// because the agent applies the state itself when it loads.
func (s *Service) OnPageLoaded(ctx context.Context, page entity.Page) {
	ctx = logging.WithPageID(logging.WithComponent(ctx, "background"), string(page.ID))
	log := logging.FromContext(ctx)

	ps, err := s.resolve.Execute(ctx, page.URL)
	if err != nil {
		log.Debug().Err(err).Msg("page not eligible")
		return
	}
	if !ps.State.Enabled {
		return
	}

	if _, err := s.messenger.SendToPage(ctx, page.ID, entity.ToggleDarkMode{Enabled: true}); err != nil {
		log.Debug().Err(err).Msg("content agent not ready")
	}
}

func (s *Service) handleSetGlobalDarkMode(
	ctx context.Context,
	_ entity.PageID,
	msg entity.Message,
) (*entity.Response, error) {
	req := msg.(entity.SetGlobalDarkMode)
	ctx = logging.WithComponent(ctx, "background")

	if _, err := s.global.Execute(ctx, req.Enabled, req.Intensity); err != nil {
		if errors.Is(err, entity.ErrStorage) {
			return entity.Fail(err.Error()), nil
		}
		logging.FromContext(ctx).Error().Err(err).Msg("failed to notify tabs")
		return entity.Fail("Failed to notify tabs"), nil
	}
	return &entity.Response{Success: true}, nil
}

func (s *Service) handleSettingsUpdated(
	ctx context.Context,
	_ entity.PageID,
	msg entity.Message,
) (*entity.Response, error) {
	req := msg.(entity.SettingsUpdated)
	ctx = logging.WithComponent(ctx, "background")

	_, enabledChanged := req.Settings[entity.KeyDarkModeEnabled]
	_, intensityChanged := req.Settings[entity.KeyDarkModeIntensity]
	if !enabledChanged && !intensityChanged {
		return &entity.Response{Success: true}, nil
	}

	if _, err := s.global.Rebroadcast(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to push updated settings")
		return entity.Fail(err.Error()), nil
	}
	return &entity.Response{Success: true}, nil
}

func (s *Service) handleContentScriptLoaded(
	ctx context.Context,
	from entity.PageID,
	msg entity.Message,
) (*entity.Response, error) {
	loaded := msg.(entity.ContentScriptLoaded)
	logging.FromContext(ctx).Debug().
		Str("page_id", string(from)).
		Str("url", loaded.URL).
		Msg("content agent loaded")
	return nil, nil
}
