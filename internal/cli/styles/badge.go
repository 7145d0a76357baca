package styles

import (
	"fmt"
	"time"
)

// TimeBadge renders a relative time badge.
func (t *Theme) TimeBadge(tm time.Time) string {
	if tm.IsZero() {
		return t.BadgeMuted.Render("unknown")
	}
	return t.BadgeMuted.Render(RelativeTime(tm))
}

// DomainBadge renders a domain badge.
func (t *Theme) DomainBadge(domain string) string {
	return t.Badge.Render(domain)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// RelativeTime formats a time as a human-readable relative string.
func RelativeTime(tm time.Time) string {
	return relativeTo(tm, time.Now())
}

func relativeTo(tm, now time.Time) string {
	diff := now.Sub(tm)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	case diff < 30*24*time.Hour:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/(24*7)))
	case diff < 365*24*time.Hour:
		return fmt.Sprintf("%dmo ago", int(diff.Hours()/(24*30)))
	default:
		return fmt.Sprintf("%dy ago", int(diff.Hours()/(24*365)))
	}
}
