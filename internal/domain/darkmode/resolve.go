// Package darkmode decides whether a page should be dark and at which intensity.
package darkmode

import (
	"errors"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/url"
)

// Resolve computes the effective state for domain.
// A site override replaces the global enabled flag for that exact domain only;
// intensity always comes from the global settings.
func Resolve(domain string, global entity.GlobalSettings, sites entity.WebsiteSettings) entity.EffectiveState {
	enabled := global.DarkModeEnabled
	if domain != "" {
		if site, ok := sites[domain]; ok {
			enabled = site.DarkModeEnabled
		}
	}
	return entity.EffectiveState{
		Enabled:   enabled,
		Intensity: global.DarkModeIntensity.OrDefault(),
	}
}

// ResolveURL resolves the state of the page at rawURL.
//
// Pages on privileged or missing URLs return entity.ErrUnsupportedSurface.
// A URL with no usable hostname resolves to the global state.
func ResolveURL(rawURL string, settings entity.Settings, privileged []string) (entity.EffectiveState, string, error) {
	domain, err := url.PageDomain(rawURL, privileged)
	if err != nil {
		if errors.Is(err, entity.ErrUnsupportedSurface) {
			return entity.EffectiveState{}, "", err
		}
		domain = ""
	}
	return Resolve(domain, settings.Global, settings.Websites), domain, nil
}
