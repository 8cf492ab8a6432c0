// Package grid renders proxy lists as a two-dimensional grid of slots.
//
// Two renderers share one cell contract:
//   - Window renders a virtualized grid: only the rows inside the viewport,
//     plus a small overscan, are materialized. Scrolling moves the viewport
//     without recomputing the layout.Plan.
//   - Flat renders every item in order with no culling. It is used for short
//     lists and whenever the container width is still unknown.
//
// Cells are drawn by a CellRenderer collaborator which receives the item,
// its state flags and the Box the slot occupies.
package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/proxygrid/internal/layout"
)

// Box is the geometry of a slot, relative to the grid origin.
type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether (x, y) falls inside b.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Props is the host input: the ordered items, the active item and the
// activation callback.
type Props struct {
	Items      []string
	Now        string
	Selectable bool
	OnActivate func(item string)
}

// IsCurrent reports whether item is the active one. An empty Now marks
// nothing as current.
func (p Props) IsCurrent(item string) bool {
	return p.Now != "" && item == p.Now
}

// CellContext is everything a CellRenderer needs to draw one item.
type CellContext struct {
	Item       string
	Current    bool
	Selectable bool
	Focused    bool
	OnActivate func(item string)
	Box        Box
}

// CellRenderer draws a populated slot. The returned string is fitted to the
// slot box by the grid, so renderers may return less than the full box.
type CellRenderer interface {
	RenderCell(c CellContext) string
}

// CellRendererFunc adapts a function to CellRenderer.
type CellRendererFunc func(c CellContext) string

// RenderCell implements CellRenderer.
func (f CellRendererFunc) RenderCell(c CellContext) string {
	return f(c)
}

// Slot is one materialized grid position.
type Slot struct {
	Key     layout.Key
	Cell    layout.Cell
	Box     Box
	Content string
}

// NoFocus disables the focus flag for every slot.
const NoFocus = -1

// Placeholder renders an empty slot of the given geometry.
func Placeholder(b Box) string {
	return fit("", b.Width, b.Height)
}

// renderSlot resolves one cell into a slot with fitted content.
func renderSlot(cell layout.Cell, box Box, p Props, r CellRenderer, focus int) Slot {
	s := Slot{Key: cell.Key(), Cell: cell, Box: box}
	if !cell.Present {
		s.Content = Placeholder(box)
		return s
	}
	s.Content = fit(r.RenderCell(CellContext{
		Item:       cell.Item,
		Current:    p.IsCurrent(cell.Item),
		Selectable: p.Selectable,
		Focused:    cell.Index == focus,
		OnActivate: p.OnActivate,
		Box:        box,
	}), box.Width, box.Height)
	return s
}

// fit pads or crops s to exactly width columns and height lines.
func fit(s string, width, height int) string {
	width, height = max(width, 1), max(height, 1)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(s)
}

// joinRows lays out slots row by row. Slots must be ordered by row, then
// column.
func joinRows(slots []Slot) string {
	if len(slots) == 0 {
		return ""
	}
	var rows []string
	var row []string
	current := slots[0].Cell.Row
	for _, s := range slots {
		if s.Cell.Row != current {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = row[:0]
			current = s.Cell.Row
		}
		row = append(row, s.Content)
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n")
}
