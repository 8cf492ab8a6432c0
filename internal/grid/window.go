package grid

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/proxygrid/internal/layout"
)

// DefaultOverscan is the number of extra rows materialized above and below
// the viewport.
const DefaultOverscan = 1

// Window is the virtualized renderer. It maps a scroll offset to the set of
// visible rows and materializes only those slots.
type Window struct {
	plan      layout.Plan
	sizing    layout.Sizing
	width     int
	overscan  int
	scrollTop int
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithOverscan sets how many rows beyond the viewport are materialized.
func WithOverscan(rows int) WindowOption {
	return func(w *Window) {
		w.overscan = max(rows, 0)
	}
}

// WithScrollTop restores a scroll offset, clamped to the grid.
func WithScrollTop(offset int) WindowOption {
	return func(w *Window) {
		w.scrollTop = offset
	}
}

// NewWindow creates a windowed renderer for plan, drawn into a region of the
// given width.
func NewWindow(plan layout.Plan, s layout.Sizing, width int, opts ...WindowOption) *Window {
	w := &Window{
		plan:     plan,
		sizing:   s.Clamped(),
		width:    max(width, 0),
		overscan: DefaultOverscan,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.ScrollTo(w.scrollTop)
	return w
}

// Plan returns the layout the window was built from.
func (w *Window) Plan() layout.Plan {
	return w.plan
}

// SlotCount is the number of slots in the whole grid, materialized or not.
func (w *Window) SlotCount() int {
	return w.plan.Capacity()
}

// Size is the viewport size: the container width by the plan viewport height.
func (w *Window) Size() (width, height int) {
	return w.width, w.plan.ViewportHeight
}

// ScrollTop returns the current vertical offset.
func (w *Window) ScrollTop() int {
	return w.scrollTop
}

// MaxScrollTop is the largest offset that still fills the viewport.
func (w *Window) MaxScrollTop() int {
	return max(0, w.plan.ContentHeight(w.sizing.RowHeight)-w.plan.ViewportHeight)
}

// ScrollTo moves the viewport to offset, clamped, and returns the result.
func (w *Window) ScrollTo(offset int) int {
	w.scrollTop = min(max(offset, 0), w.MaxScrollTop())
	return w.scrollTop
}

// ScrollBy moves the viewport by delta.
func (w *Window) ScrollBy(delta int) int {
	return w.ScrollTo(w.scrollTop + delta)
}

// ScrollToRow scrolls the least amount needed to show row completely.
func (w *Window) ScrollToRow(row int) int {
	if row < 0 || row >= w.plan.RowCount {
		return w.scrollTop
	}
	rh := w.sizing.RowHeight
	top, bottom := row*rh, (row+1)*rh
	switch {
	case top < w.scrollTop:
		return w.ScrollTo(top)
	case bottom > w.scrollTop+w.plan.ViewportHeight:
		return w.ScrollTo(bottom - w.plan.ViewportHeight)
	default:
		return w.scrollTop
	}
}

// VisibleRows returns the half-open range of rows intersecting the viewport.
func (w *Window) VisibleRows() (from, to int) {
	if w.plan.RowCount == 0 {
		return 0, 0
	}
	rh := w.sizing.RowHeight
	from = w.scrollTop / rh
	to = (w.scrollTop + w.plan.ViewportHeight + rh - 1) / rh
	return from, min(to, w.plan.RowCount)
}

// materializedRows widens VisibleRows by the overscan.
func (w *Window) materializedRows() (from, to int) {
	from, to = w.VisibleRows()
	if from == to {
		return from, to
	}
	return max(0, from-w.overscan), min(w.plan.RowCount, to+w.overscan)
}

// Slots materializes the slots of the visible rows plus overscan, ordered
// by row then column. Slots past the end of p.Items are placeholders. focus
// is the linear index of the focused item, or NoFocus.
func (w *Window) Slots(p Props, r CellRenderer, focus int) []Slot {
	from, to := w.materializedRows()
	cw, rh := w.sizing.ColumnWidth, w.sizing.RowHeight

	slots := make([]Slot, 0, (to-from)*w.plan.ColumnCount)
	for row := from; row < to; row++ {
		for col := 0; col < w.plan.ColumnCount; col++ {
			box := Box{X: col * cw, Y: row * rh, Width: cw, Height: rh}
			slots = append(slots, renderSlot(w.plan.Cell(row, col, p.Items), box, p, r, focus))
		}
	}
	return slots
}

// View draws the viewport: exactly ViewportHeight lines, cropped to the
// container width.
func (w *Window) View(p Props, r CellRenderer, focus int) string {
	if w.plan.RowCount == 0 || w.plan.ViewportHeight == 0 {
		return ""
	}
	from, _ := w.materializedRows()
	lines := strings.Split(joinRows(w.Slots(p, r, focus)), "\n")

	start := min(w.scrollTop-from*w.sizing.RowHeight, len(lines))
	end := min(start+w.plan.ViewportHeight, len(lines))
	block := strings.Join(lines[start:end], "\n")

	if w.width > 0 {
		block = lipgloss.NewStyle().MaxWidth(w.width).Render(block)
	}
	return block
}

// HitTest maps viewport coordinates to the cell under them.
func (w *Window) HitTest(x, y int, items []string) (layout.Cell, bool) {
	if x < 0 || y < 0 || y >= w.plan.ViewportHeight {
		return layout.Cell{}, false
	}
	row := (w.scrollTop + y) / w.sizing.RowHeight
	col := x / w.sizing.ColumnWidth
	if !w.plan.Contains(row, col) {
		return layout.Cell{}, false
	}
	return w.plan.Cell(row, col, items), true
}
