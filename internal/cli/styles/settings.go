package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dimmer/internal/application/usecase"
	"github.com/bnema/dimmer/internal/domain/entity"
)

// SettingsRenderer renders stored settings, page states and broadcast results.
type SettingsRenderer struct {
	theme *Theme
}

// NewSettingsRenderer creates a new settings renderer with the given theme.
func NewSettingsRenderer(theme *Theme) *SettingsRenderer {
	return &SettingsRenderer{theme: theme}
}

// RenderGlobal renders the global settings block.
func (r *SettingsRenderer) RenderGlobal(g entity.GlobalSettings) string {
	t := r.theme
	icon := IconSun
	if g.DarkModeEnabled {
		icon = IconMoon
	}
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	rows := [][2]string{
		{"Dark mode", t.Switch(g.DarkModeEnabled)},
		{"Intensity", t.IntensitySwatch(g.DarkModeIntensity)},
		{"Extension", t.Switch(g.ExtensionEnabled)},
		{"Auto apply", t.Switch(g.AutoApplyDarkMode)},
		{"Installed", t.TimeBadge(g.InstallationDate)},
		{"Updated", t.TimeBadge(g.LastUpdated)},
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s\n", iconStyle.Render(icon), t.Title.Render("Global settings")))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    %-12s %s\n", t.Subtle.Render(row[0]), row[1]))
	}
	return sb.String()
}

// RenderPageState renders the resolved state of one URL.
func (r *SettingsRenderer) RenderPageState(state *usecase.PageState) string {
	t := r.theme

	domain := t.MutedBadge("no domain")
	if state.Domain != "" {
		domain = t.DomainBadge(state.Domain)
	}
	source := t.Subtle.Render("global")
	if state.Override != nil {
		source = t.Highlight.Render("site override")
	}

	return fmt.Sprintf(
		"\n  %s %s %s\n    %-12s %s %s\n",
		lipgloss.NewStyle().Foreground(t.Accent).Render(IconGlobe),
		t.Normal.Render(state.URL),
		domain,
		t.Subtle.Render("Dark mode"),
		t.Switch(state.State.Enabled),
		source,
	)
}

// RenderUnavailable renders the message shown for pages the extension may not touch.
func (r *SettingsRenderer) RenderUnavailable(rawURL string) string {
	return fmt.Sprintf("\n  %s %s %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.Normal.Render(rawURL),
		r.theme.Subtle.Render(entity.ErrUnsupportedSurface.Error()),
	)
}

// RenderWebsites renders the website exception list.
func (r *SettingsRenderer) RenderWebsites(entries []usecase.WebsiteEntry) string {
	t := r.theme
	if len(entries) == 0 {
		return fmt.Sprintf("\n  %s\n", t.Subtle.Render("No website exceptions"))
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Domain))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s\n", t.Title.Render(fmt.Sprintf("Website exceptions (%d)", len(entries)))))
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("    %s %s  %s %s\n",
			t.HelpKey.Render(IconCursor),
			t.Normal.Render(fmt.Sprintf("%-*s", width, e.Domain)),
			t.Switch(e.DarkModeEnabled),
			t.TimeBadge(e.AddedDate),
		))
	}
	return sb.String()
}

// RenderReport renders a broadcast summary.
func (r *SettingsRenderer) RenderReport(report *usecase.BroadcastReport) string {
	t := r.theme
	if report == nil || report.Targets() == 0 {
		return fmt.Sprintf("  %s\n", t.Subtle.Render("No open pages"))
	}

	parts := []string{t.SuccessStyle.Render(fmt.Sprintf("%d updated", len(report.Delivered)))}
	if n := len(report.Failed); n > 0 {
		parts = append(parts, t.WarningStyle.Render(fmt.Sprintf("%d unreachable", n)))
	}
	if n := len(report.Skipped); n > 0 {
		parts = append(parts, t.Subtle.Render(fmt.Sprintf("%d skipped", n)))
	}
	return fmt.Sprintf("  %s %s\n", t.Subtle.Render("Pages:"), strings.Join(parts, t.Subtle.Render(", ")))
}

// RenderResult renders a one-line outcome. Unsupported pages get a warning
// rather than an error.
func (r *SettingsRenderer) RenderResult(msg string, err error) string {
	if errors.Is(err, entity.ErrUnsupportedSurface) {
		return fmt.Sprintf("\n  %s\n", r.theme.WarningStyle.Render(IconInfo+" "+entity.ErrUnsupportedSurface.Error()))
	}
	return fmt.Sprintf("\n  %s\n", r.theme.StatusLine(msg, err))
}
