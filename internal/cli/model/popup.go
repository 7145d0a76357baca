// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/cli/styles"
	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/infrastructure/config"
	"github.com/bnema/dimmer/internal/logging"
)

// PopupActions is what the popup drives.
type PopupActions interface {
	Load(ctx context.Context) (*usecase.PopupState, error)
	ToggleGlobal(ctx context.Context, enabled bool) (string, error)
	ToggleSite(ctx context.Context, enabled bool) (string, error)
	ForceDarkMode(ctx context.Context) (string, error)
	ChangeIntensity(ctx context.Context, intensity entity.Intensity) (string, error)
}

// PopupModel is the Bubble Tea model of the quick-settings popup.
type PopupModel struct {
	help help.Model
	keys styles.PopupKeyMap

	state     *usecase.PopupState
	loadErr   error
	status    string
	statusErr error
	width     int

	ctx     context.Context
	actions PopupActions
	theme   *styles.Theme
}

// NewPopupModel creates a popup model.
func NewPopupModel(ctx context.Context, theme *styles.Theme, keys styles.PopupKeyMap, actions PopupActions) PopupModel {
	return PopupModel{
		help:    styles.NewStyledHelp(theme),
		keys:    keys,
		width:   60,
		ctx:     ctx,
		actions: actions,
		theme:   theme,
	}
}

// popupLoadedMsg carries a fresh popup state.
type popupLoadedMsg struct {
	state *usecase.PopupState
	err   error
}

// popupActionMsg carries the outcome of a user action.
type popupActionMsg struct {
	message string
	err     error
}

// ConfigChangedMsg restyles the popup after the config file changed.
type ConfigChangedMsg struct {
	Config *config.Config
}

// Init implements tea.Model.
func (m PopupModel) Init() tea.Cmd {
	return m.load
}

func (m PopupModel) load() tea.Msg {
	state, err := m.actions.Load(m.ctx)
	return popupLoadedMsg{state: state, err: err}
}

func (m PopupModel) run(action func(context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		msg, err := action(m.ctx)
		if err != nil {
			logging.FromContext(m.ctx).Debug().Err(err).Msg("popup action failed")
		}
		return popupActionMsg{message: msg, err: err}
	}
}

// Update implements tea.Model.
func (m PopupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case popupLoadedMsg:
		if msg.state != nil {
			m.state = msg.state
		}
		m.loadErr = msg.err
		return m, nil

	case popupActionMsg:
		m.status = msg.message
		m.statusErr = msg.err
		return m, m.load

	case ConfigChangedMsg:
		if msg.Config == nil {
			return m, nil
		}
		m.theme = styles.NewTheme(msg.Config)
		m.keys = styles.NewPopupKeyMap(msg.Config.Keybindings)
		showAll := m.help.ShowAll
		m.help = styles.NewStyledHelp(m.theme)
		m.help.ShowAll = showAll
		m.help.Width = m.width
		return m, nil
	}

	return m, nil
}

func (m PopupModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.ToggleDarkMode):
		enabled := !m.state.Global.DarkModeEnabled
		return m, m.run(func(ctx context.Context) (string, error) {
			return m.actions.ToggleGlobal(ctx, enabled)
		})

	case key.Matches(msg, m.keys.ToggleSite):
		if !m.state.Available {
			return m.unavailable(), nil
		}
		enabled := !m.state.SiteEnabled
		return m, m.run(func(ctx context.Context) (string, error) {
			return m.actions.ToggleSite(ctx, enabled)
		})

	case key.Matches(msg, m.keys.Force):
		if !m.state.Available {
			return m.unavailable(), nil
		}
		return m, m.run(m.actions.ForceDarkMode)

	case key.Matches(msg, m.keys.Intensity):
		next := NextIntensity(m.state.Global.DarkModeIntensity)
		return m, m.run(func(ctx context.Context) (string, error) {
			return m.actions.ChangeIntensity(ctx, next)
		})
	}

	return m, nil
}

func (m PopupModel) unavailable() PopupModel {
	m.status = ""
	m.statusErr = entity.ErrUnsupportedSurface
	return m
}

// NextIntensity cycles light, medium, deep.
func NextIntensity(i entity.Intensity) entity.Intensity {
	all := entity.Intensities()
	for idx, v := range all {
		if v == i.OrDefault() {
			return all[(idx+1)%len(all)]
		}
	}
	return entity.DefaultIntensity
}

// View implements tea.Model.
func (m PopupModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.BoxHeader.Render(styles.IconMoon + " Dimmer"))
	b.WriteString("\n")

	if m.state == nil {
		if m.loadErr != nil {
			b.WriteString(t.ErrorStyle.Render(m.loadErr.Error()))
		} else {
			b.WriteString(t.Subtle.Render("Loading..."))
		}
		return t.Box.Render(b.String())
	}

	b.WriteString(m.renderPage())
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())
	b.WriteString("\n")

	if status := m.renderStatus(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return t.Box.Render(b.String())
}

func (m PopupModel) renderPage() string {
	t := m.theme
	if !m.state.Available {
		return t.WarningStyle.Render(styles.IconInfo + " " + entity.ErrUnsupportedSurface.Error())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		t.HelpKey.Render(styles.IconGlobe+" "),
		t.DomainBadge(m.state.Domain),
	)
}

func (m PopupModel) renderRows() string {
	t := m.theme
	label := func(s string) string {
		return t.Subtle.Render(fmt.Sprintf("%-12s", s))
	}

	rows := []string{
		label("Dark mode") + t.Switch(m.state.Global.DarkModeEnabled),
		label("Intensity") + t.IntensitySwatch(m.state.Global.DarkModeIntensity),
	}
	if m.state.Available {
		site := label("This site") + t.Switch(m.state.SiteEnabled)
		if m.state.HasOverride {
			site += " " + t.MutedBadge("exception")
		}
		rows = append(rows, site)
	}
	return strings.Join(rows, "\n")
}

func (m PopupModel) renderStatus() string {
	t := m.theme
	switch {
	case errors.Is(m.statusErr, entity.ErrUnsupportedSurface):
		return t.WarningStyle.Render(styles.IconInfo + " " + entity.ErrUnsupportedSurface.Error())
	case m.statusErr != nil:
		return t.StatusLine("", m.statusErr)
	case m.status != "":
		return t.StatusLine(m.status, nil)
	case m.loadErr != nil:
		return t.StatusLine("", m.loadErr)
	}
	return ""
}
