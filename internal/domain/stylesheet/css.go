// Package stylesheet generates the dark mode style sheets injected into pages.
package stylesheet

import (
	"fmt"
	"strings"

	"github.com/bnema/dimmer/internal/domain/entity"
)

const (
	// StyleID is the element id of the tier style sheet.
	StyleID = "extension-dark-mode"
	// MarkerClass is added to the body while the tier sheet is active.
	MarkerClass = "dark-mode"
	// AggressiveStyleID is the element id of the force-dark style sheet.
	AggressiveStyleID = "aggressive-dark-mode"
)

// Accent colours shared by every tier.
const (
	linkColor       = "#4dabf7"
	linkHoverColor  = "#74c0fc"
	focusRing       = "rgba(77, 171, 247, 0.3)"
	controlSurface  = "#1a1a1a"
	buttonSurface   = "#212121"
	buttonHover     = "#333333"
	scrollbarHover  = "#555555"
	aggressiveInput = "#444444"
)

// DarkModeCSS returns the tier sheet for intensity. Every selector is scoped
// under body.dark-mode so the sheet is inert until the marker class is set.
func DarkModeCSS(intensity entity.Intensity) string {
	intensity = intensity.OrDefault()
	p := entity.PaletteFor(intensity)
	scope := "body." + MarkerClass

	var sb strings.Builder
	fmt.Fprintf(&sb, "/* dark mode, %s intensity */\n", intensity)

	rule(&sb, scoped(scope, "", "*"),
		"background-color: "+p.Background+" !important",
		"color: "+p.Text+" !important",
		"border-color: "+p.Border+" !important")
	rule(&sb, scoped(scope, "a"), "color: "+linkColor+" !important")
	rule(&sb, scoped(scope, "a:hover"), "color: "+linkHoverColor+" !important")
	rule(&sb, scoped(scope, "input", "textarea", "select"),
		"background-color: "+controlSurface+" !important",
		"color: "+p.Text+" !important",
		"border-color: "+p.Border+" !important")
	rule(&sb, scoped(scope, "input:focus", "textarea:focus", "select:focus"),
		"border-color: "+linkColor+" !important",
		"box-shadow: 0 0 0 2px "+focusRing+" !important")
	rule(&sb, scoped(scope, "button"),
		"background-color: "+buttonSurface+" !important",
		"color: "+p.Text+" !important",
		"border-color: "+p.Border+" !important")
	rule(&sb, scoped(scope, "button:hover"), "background-color: "+buttonHover+" !important")
	writeScrollbar(&sb, scope+" ", p.Border)
	rule(&sb, scoped(scope, "img"), "filter: brightness(0.9) contrast(1.1)")
	rule(&sb, scoped(scope, "code", "pre"),
		"background-color: "+controlSurface+" !important",
		"border: 1px solid "+p.Border+" !important")
	rule(&sb, scoped(scope, `*[style*="background"]`), "background-color: "+p.Background+" !important")
	rule(&sb, scoped(scope, `*[style*="color"]`), "color: "+p.Text+" !important")

	return sb.String()
}

// aggressiveElements is the element list painted by force-dark mode.
var aggressiveElements = []string{
	"html", "body", "div", "span", "applet", "object", "iframe",
	"h1", "h2", "h3", "h4", "h5", "h6", "p", "blockquote", "pre",
	"a", "abbr", "acronym", "address", "big", "cite", "code",
	"del", "dfn", "em", "img", "ins", "kbd", "q", "s", "samp",
	"small", "strike", "strong", "sub", "sup", "tt", "var",
	"b", "u", "i", "center",
	"dl", "dt", "dd", "ol", "ul", "li",
	"fieldset", "form", "label", "legend",
	"table", "caption", "tbody", "tfoot", "thead", "tr", "th", "td",
	"article", "aside", "canvas", "details", "embed",
	"figure", "figcaption", "footer", "header", "hgroup",
	"menu", "nav", "output", "ruby", "section", "summary",
	"time", "mark", "audio", "video",
}

// AggressiveCSS returns the unscoped force-dark sheet. It always uses the deep palette.
func AggressiveCSS() string {
	p := entity.PaletteFor(entity.IntensityDeep)

	var sb strings.Builder
	sb.WriteString("/* forced dark mode */\n")
	rule(&sb, aggressiveElements,
		"background-color: "+p.Background+" !important",
		"color: "+p.Text+" !important",
		"border-color: "+p.Border+" !important")
	rule(&sb, []string{"a"}, "color: "+linkColor+" !important")
	rule(&sb, []string{"a:hover"}, "color: "+linkHoverColor+" !important")
	rule(&sb, []string{"input", "textarea", "select", "button"},
		"background-color: "+controlSurface+" !important",
		"color: "+p.Text+" !important",
		"border-color: "+aggressiveInput+" !important")
	writeScrollbar(&sb, "", aggressiveInput)
	rule(&sb, []string{"img"}, "filter: brightness(0.8) contrast(1.2)")

	return sb.String()
}

func writeScrollbar(sb *strings.Builder, prefix, thumb string) {
	rule(sb, []string{prefix + "::-webkit-scrollbar"}, "width: 8px", "height: 8px")
	rule(sb, []string{prefix + "::-webkit-scrollbar-track"}, "background: "+controlSurface)
	rule(sb, []string{prefix + "::-webkit-scrollbar-thumb"}, "background: "+thumb, "border-radius: 4px")
	rule(sb, []string{prefix + "::-webkit-scrollbar-thumb:hover"}, "background: "+scrollbarHover)
}

// scoped prefixes each selector with scope. An empty selector yields scope itself.
func scoped(scope string, selectors ...string) []string {
	out := make([]string, len(selectors))
	for i, s := range selectors {
		if s == "" {
			out[i] = scope
			continue
		}
		out[i] = scope + " " + s
	}
	return out
}

func rule(sb *strings.Builder, selectors []string, declarations ...string) {
	sb.WriteString(strings.Join(selectors, ",\n"))
	sb.WriteString(" {\n")
	for _, d := range declarations {
		sb.WriteString("\t")
		sb.WriteString(d)
		sb.WriteString(";\n")
	}
	sb.WriteString("}\n\n")
}
