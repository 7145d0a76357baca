// Package url provides URL and domain helpers for dark mode resolution.
package url

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/dimmer/internal/domain/entity"
)

// DefaultPrivilegedSchemes are the schemes of browser-internal pages that must never be styled.
func DefaultPrivilegedSchemes() []string {
	return []string{"chrome", "chrome-extension", "about", "dimmer"}
}

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if strings.Contains(input, "://") || strings.HasPrefix(input, "about:") {
		return input
	}

	if strings.Contains(input, ".") && !strings.Contains(input, " ") {
		return "https://" + input
	}

	return input
}

// Scheme returns the lower-cased scheme of rawURL, or "" if it has none.
func Scheme(rawURL string) string {
	i := strings.Index(rawURL, ":")
	if i <= 0 {
		return ""
	}
	return strings.ToLower(rawURL[:i])
}

// IsPrivileged reports whether rawURL uses one of the given schemes.
func IsPrivileged(rawURL string, schemes []string) bool {
	scheme := Scheme(rawURL)
	if scheme == "" {
		return false
	}
	for _, s := range schemes {
		if strings.EqualFold(s, scheme) {
			return true
		}
	}
	return false
}

// ExtractDomain returns the exact, lower-cased hostname of rawURL.
// No prefix stripping: www.example.com and example.com are distinct domains.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// PageDomain classifies a page URL.
//
// An empty URL or a privileged scheme yields entity.ErrUnsupportedSurface.
// A URL without a hostname yields entity.ErrInvalidDomain.
func PageDomain(rawURL string, privileged []string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", fmt.Errorf("%w: no page url", entity.ErrUnsupportedSurface)
	}
	if IsPrivileged(rawURL, privileged) {
		return "", fmt.Errorf("%w: %s", entity.ErrUnsupportedSurface, Scheme(rawURL))
	}
	domain := ExtractDomain(rawURL)
	if domain == "" {
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidDomain, rawURL)
	}
	return domain, nil
}

// ValidateDomain checks a hand-typed website exception and returns it normalized.
// The input must contain a dot and must not start or end with one.
func ValidateDomain(input string) (string, error) {
	domain := strings.ToLower(strings.TrimSpace(input))
	switch {
	case domain == "":
		return "", fmt.Errorf("%w: please enter a domain name", entity.ErrInvalidDomain)
	case !strings.Contains(domain, "."),
		strings.HasPrefix(domain, "."),
		strings.HasSuffix(domain, "."):
		return "", fmt.Errorf("%w: %q", entity.ErrInvalidDomain, input)
	}
	return domain, nil
}
