package wizard

// Brand colors used by the wizard theme. Dark-terminal values; the
// theme maps each to a light-terminal counterpart.
const (
	ColorPrimary   = "#4B8BBE"
	ColorSecondary = "#FFD43B"
	ColorSuccess   = "#34D399"
	ColorError     = "#F87171"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#374151"
)
