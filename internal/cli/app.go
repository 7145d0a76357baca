// Package cli provides the command-line interface for dimmer.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/dimmer/internal/app/background"
	"github.com/bnema/dimmer/internal/application/port"
	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/build"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/infrastructure/config"
	"github.com/bnema/dimmer/internal/infrastructure/pagehost"
	"github.com/bnema/dimmer/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dimmer/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Manager    *config.Manager
	Theme      *styles.Theme
	BuildInfo  build.Info

	Repo       repository.SettingsRepository
	Host       *pagehost.Host
	Background *background.Service
	Pages      *PageSession

	SettingsUC *usecase.GetSettingsUseCase
	GlobalUC   *usecase.SetGlobalDarkModeUseCase
	WebsitesUC *usecase.ManageWebsitesUseCase
	OptionsUC  *usecase.OptionsUseCase
	PopupUC    *usecase.PopupUseCase
	ResolveUC  *usecase.ResolvePageStateUseCase
	Styles     *usecase.StyleApplicator

	db  port.DatabaseProvider
	ctx context.Context
}

// Options override config values for one invocation.
type Options struct {
	DatabasePath string
	LogLevel     string
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts Options) (*App, error) {
	mgr, cfg := loadConfig()
	if opts.DatabasePath != "" {
		cfg.Database.Path = opts.DatabasePath
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	conn, err := db.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	app := &App{
		Config: cfg,
		Theme:  styles.NewTheme(cfg),
		db:     db,
		ctx:    ctx,
	}
	if mgr != nil {
		app.Manager = mgr
		app.ConfigFile = mgr.GetConfigFile()
	}
	if err := app.wire(sqlite.NewSettingsRepository(conn)); err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// wire builds the page host, the background coordinator and the use cases
// around repo, then runs the install step.
func (a *App) wire(repo repository.SettingsRepository) error {
	privileged := a.Config.DarkMode.PrivilegedSchemes
	host := pagehost.New()

	broadcast := usecase.NewBroadcastUseCase(host, host, privileged, a.Config.Broadcast.MaxConcurrency)
	global := usecase.NewSetGlobalDarkModeUseCase(repo, broadcast)
	resolve := usecase.NewResolvePageStateUseCase(repo, privileged)
	websites := usecase.NewManageWebsitesUseCase(repo)
	applicator := usecase.NewStyleApplicator()

	svc, err := background.NewService(background.Deps{
		Initialize: usecase.NewInitializeSettingsUseCase(repo),
		Global:     global,
		Resolve:    resolve,
		Messenger:  host,
	})
	if err != nil {
		return fmt.Errorf("failed to start background service: %w", err)
	}
	host.SetBackground(svc.Router())

	if err := svc.Install(a.ctx); err != nil {
		logging.FromContext(a.ctx).Warn().Err(err).Msg("install defaults not written")
	}

	a.Repo = repo
	a.Host = host
	a.Background = svc
	a.Pages = NewPageSession(host, repo, privileged).OnLoaded(svc.OnPageLoaded)
	a.SettingsUC = usecase.NewGetSettingsUseCase(repo)
	a.GlobalUC = global
	a.WebsitesUC = websites
	a.OptionsUC = usecase.NewOptionsUseCase(repo, host, websites)
	a.ResolveUC = resolve
	a.Styles = applicator
	a.PopupUC = usecase.NewPopupUseCase(usecase.PopupDeps{
		Repo:       repo,
		Pages:      host,
		Messenger:  host,
		Background: host,
		Documents:  host,
		Websites:   websites,
		Styles:     applicator,
		Privileged: privileged,
	})
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		log := logging.NewFromEnv()
		log.Warn().Err(err).Msg("using default configuration")
		cfg := config.DefaultConfig()
		cfg.Database.Path, _ = config.GetDatabaseFile()
		return mgr, cfg
	}

	return mgr, mgr.Get()
}
