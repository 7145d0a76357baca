package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dimmer/internal/infrastructure/config"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PopupKeyMap defines keybindings for the popup.
type PopupKeyMap struct {
	ToggleDarkMode key.Binding
	ToggleSite     key.Binding
	Force          key.Binding
	Intensity      key.Binding
	Help           key.Binding
	Quit           key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleDarkMode, k.ToggleSite, k.Force, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleDarkMode, k.ToggleSite},
		{k.Force, k.Intensity},
		{k.Help, k.Quit},
	}
}

// NewPopupKeyMap builds the popup keybindings from config.
func NewPopupKeyMap(kb config.KeybindingsConfig) PopupKeyMap {
	return PopupKeyMap{
		ToggleDarkMode: binding(kb.ToggleDarkMode, "dark mode"),
		ToggleSite:     binding(kb.ToggleSite, "this site"),
		Force:          binding(kb.Force, "force dark"),
		Intensity:      binding(kb.Intensity, "intensity"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: binding(kb.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
