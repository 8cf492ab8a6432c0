package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rshade/proxygrid/internal/grid"
)

// ProxyCell draws a proxy as a bordered card: a state marker followed by the
// display-width-truncated name. Boxes shorter than three lines drop the
// border.
type ProxyCell struct{}

// RenderCell implements grid.CellRenderer.
func (ProxyCell) RenderCell(c grid.CellContext) string {
	bordered := c.Box.Height >= 3 && c.Box.Width > cardBorderWidth+cardGap+markerWidth
	inner := c.Box.Width - cardGap
	if bordered {
		inner -= cardBorderWidth
	}
	inner = max(inner, 1)

	marker := "  "
	if c.Current {
		marker = lipgloss.NewStyle().Foreground(ColorOK).Render(IconCurrent) + " "
	}
	name := runewidth.Truncate(c.Item, max(inner-markerWidth, 1), truncateSuffix)

	nameStyle := lipgloss.NewStyle().Foreground(ColorValue)
	switch {
	case !c.Selectable:
		nameStyle = nameStyle.Foreground(ColorMuted)
	case c.Focused:
		nameStyle = nameStyle.Foreground(ColorFocus).Bold(true)
	case c.Current:
		nameStyle = nameStyle.Bold(true)
	}
	body := lipgloss.NewStyle().Width(inner).Render(marker + nameStyle.Render(name))

	if !bordered {
		if c.Focused {
			return lipgloss.NewStyle().Reverse(true).Render(body)
		}
		return body
	}

	border := ColorBorder
	switch {
	case c.Focused:
		border = ColorFocus
	case c.Current:
		border = ColorOK
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(body)
}

// ProxyDot draws a proxy as a single glyph, for the summary variant.
type ProxyDot struct{}

// RenderCell implements grid.CellRenderer.
func (ProxyDot) RenderCell(c grid.CellContext) string {
	glyph, color := IconSelectable, ColorLabel
	switch {
	case c.Focused:
		glyph, color = IconFocused, ColorFocus
	case c.Current:
		glyph, color = IconCurrent, ColorOK
	case !c.Selectable:
		glyph, color = IconDisabled, ColorMuted
	}
	return lipgloss.NewStyle().Foreground(color).Render(glyph)
}
