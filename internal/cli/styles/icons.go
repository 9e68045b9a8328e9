package styles

// Nerd Font icons used by the CLI renderers.
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconGo        = "" //  go gopher
	IconHeart     = "" //  heart
	IconCheck     = "" // check
	IconX         = "" // x
	IconConfig    = "" // config
	IconTrash     = "" // trash
	IconCursor    = "" // chevron-right
)
