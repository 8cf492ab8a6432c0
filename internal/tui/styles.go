package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader  = lipgloss.Color("99")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorMuted   = lipgloss.Color("240")
	ColorOK      = lipgloss.Color("42")
	ColorFocus   = lipgloss.Color("212")
	ColorBorder  = lipgloss.Color("238")
	ColorWarning = lipgloss.Color("214")
)

// Glyphs.
const (
	IconCurrent     = "●"
	IconSelectable  = "○"
	IconDisabled    = "·"
	IconFocused     = "◉"
	truncateSuffix  = "…"
	markerWidth     = 2
	cardBorderWidth = 2
	cardGap         = 1
)

// Shared text styles.
//
//nolint:gochecknoglobals // Immutable lipgloss styles shared across views.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
)
