package grid

import (
	"github.com/rshade/proxygrid/internal/layout"
)

// Flat renders every item with no windowing. Items flow left to right in
// cells of the configured size; with an unknown width (0) they stack one per
// row.
type Flat struct {
	width  int
	sizing layout.Sizing
}

// NewFlat creates a flat renderer for a region of the given width.
func NewFlat(width int, s layout.Sizing) Flat {
	return Flat{width: max(width, 0), sizing: s.Clamped()}
}

// PerRow is the number of items placed on each row.
func (f Flat) PerRow() int {
	if f.width == 0 {
		return 1
	}
	return max(1, f.width/f.sizing.ColumnWidth)
}

func (f Flat) cell(index int, items []string) (layout.Cell, Box) {
	per := f.PerRow()
	row, col := index/per, index%per
	cell := layout.Cell{Row: row, Column: col, Index: index, Item: items[index], Present: true}
	box := Box{
		X:      col * f.sizing.ColumnWidth,
		Y:      row * f.sizing.RowHeight,
		Width:  f.sizing.ColumnWidth,
		Height: f.sizing.RowHeight,
	}
	return cell, box
}

// Slots returns one slot per item, in item order. Every item is present.
func (f Flat) Slots(p Props, r CellRenderer, focus int) []Slot {
	slots := make([]Slot, 0, len(p.Items))
	for i := range p.Items {
		cell, box := f.cell(i, p.Items)
		slots = append(slots, renderSlot(cell, box, p, r, focus))
	}
	return slots
}

// View draws all items.
func (f Flat) View(p Props, r CellRenderer, focus int) string {
	return joinRows(f.Slots(p, r, focus))
}

// Rows is the number of rows the flat layout occupies.
func (f Flat) Rows(itemCount int) int {
	per := f.PerRow()
	return (max(itemCount, 0) + per - 1) / per
}

// HitTest maps coordinates relative to the first row to an item.
func (f Flat) HitTest(x, y int, items []string) (layout.Cell, bool) {
	if x < 0 || y < 0 {
		return layout.Cell{}, false
	}
	col := x / f.sizing.ColumnWidth
	if col >= f.PerRow() {
		return layout.Cell{}, false
	}
	idx := (y/f.sizing.RowHeight)*f.PerRow() + col
	if idx >= len(items) {
		return layout.Cell{}, false
	}
	cell, _ := f.cell(idx, items)
	return cell, true
}
