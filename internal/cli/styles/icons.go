package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe     = "" //  browser/web
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconMoon     = "" // moon
	IconSun      = "" // sun
	IconDatabase = "" // database
	IconConfig   = "" // config
	IconFile     = "" // file

	IconCursor = "" // chevron-right
)
