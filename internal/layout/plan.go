package layout

import "fmt"

// Plan is the grid geometry derived from an item count and a container width.
type Plan struct {
	ColumnCount    int  `json:"column_count"    yaml:"column_count"`
	RowCount       int  `json:"row_count"       yaml:"row_count"`
	Virtualize     bool `json:"virtualize"      yaml:"virtualize"`
	ViewportHeight int  `json:"viewport_height" yaml:"viewport_height"`
}

// Compute derives a Plan. It never fails: negative counts and widths are
// treated as 0 and non-positive sizes as 1.
//
// ColumnCount is at least 1 even for a zero width so that the row arithmetic
// stays defined. Callers must not render a windowed grid while the width is
// still 0; Decide enforces that.
func Compute(itemCount, containerWidth int, s Sizing) Plan {
	s = s.Clamped()
	itemCount = max(itemCount, 0)
	containerWidth = max(containerWidth, 0)

	columns := max(1, containerWidth/s.ColumnWidth)
	rows := (itemCount + columns - 1) / columns

	return Plan{
		ColumnCount:    columns,
		RowCount:       rows,
		Virtualize:     itemCount > s.VirtualizeThreshold,
		ViewportHeight: min(s.MaxViewportHeight, rows*s.RowHeight),
	}
}

// Capacity is the number of slots in the grid.
func (p Plan) Capacity() int {
	return p.ColumnCount * p.RowCount
}

// ContentHeight is the full scrollable height of the grid.
func (p Plan) ContentHeight(rowHeight int) int {
	return p.RowCount * max(rowHeight, 1)
}

// Index maps a slot to its linear item index.
func (p Plan) Index(row, col int) int {
	return row*p.ColumnCount + col
}

// Position is the inverse of Index.
func (p Plan) Position(index int) (row, col int) {
	cols := max(p.ColumnCount, 1)
	return index / cols, index % cols
}

// Contains reports whether (row, col) lies on the grid.
func (p Plan) Contains(row, col int) bool {
	return row >= 0 && row < p.RowCount && col >= 0 && col < p.ColumnCount
}

// Cell resolves the slot at (row, col) against items.
func (p Plan) Cell(row, col int, items []string) Cell {
	idx := p.Index(row, col)
	c := Cell{Row: row, Column: col, Index: idx}
	if idx >= 0 && idx < len(items) {
		c.Item = items[idx]
		c.Present = true
	}
	return c
}

// Key returns the stable identity of the slot at (row, col).
func (p Plan) Key(row, col int, items []string) Key {
	return p.Cell(row, col, items).Key()
}

// Cell is a single grid slot. Present is false for trailing slots past the
// end of the item list.
type Cell struct {
	Row     int
	Column  int
	Index   int
	Item    string
	Present bool
}

// Key returns the slot identity: the item itself when present, otherwise a
// placeholder bound to the slot position.
func (c Cell) Key() Key {
	if c.Present {
		return ItemKey(c.Item)
	}
	return PlaceholderKey(c.Row, c.Column)
}

// Key identifies a rendered slot across renders. Item keys follow the item
// when the list is reordered; placeholder keys stay with their position.
// A placeholder key never equals an item key, whatever the item is named.
type Key struct {
	item        string
	row, col    int
	placeholder bool
}

// ItemKey is the key of a populated slot.
func ItemKey(item string) Key {
	return Key{item: item}
}

// PlaceholderKey is the key of the empty slot at (row, col).
func PlaceholderKey(row, col int) Key {
	return Key{row: row, col: col, placeholder: true}
}

// IsPlaceholder reports whether k belongs to an empty slot.
func (k Key) IsPlaceholder() bool {
	return k.placeholder
}

func (k Key) String() string {
	if k.placeholder {
		return fmt.Sprintf("empty-%d-%d", k.row, k.col)
	}
	return k.item
}
