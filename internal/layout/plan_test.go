package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/proxygrid/internal/layout"
)

// TestCompute_Scenarios covers the reference detail-view geometries.
func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		items    int
		width    int
		sizing   layout.Sizing
		want     layout.Plan
		strategy layout.Strategy
	}{
		{
			name:     "large list is virtualized",
			items:    500,
			width:    900,
			sizing:   layout.DetailPixels,
			want:     layout.Plan{ColumnCount: 4, RowCount: 125, Virtualize: true, ViewportHeight: 600},
			strategy: layout.StrategyWindowed,
		},
		{
			name:     "small list stays flat",
			items:    50,
			width:    900,
			sizing:   layout.DetailPixels,
			want:     layout.Plan{ColumnCount: 4, RowCount: 13, Virtualize: false, ViewportHeight: 600},
			strategy: layout.StrategyFlat,
		},
		{
			name:     "unmeasured width clamps to one column and falls back to flat",
			items:    500,
			width:    0,
			sizing:   layout.DetailPixels,
			want:     layout.Plan{ColumnCount: 1, RowCount: 500, Virtualize: true, ViewportHeight: 600},
			strategy: layout.StrategyFlat,
		},
		{
			name:     "short grid uses its content height",
			items:    10,
			width:    900,
			sizing:   layout.DetailPixels,
			want:     layout.Plan{ColumnCount: 4, RowCount: 3, Virtualize: false, ViewportHeight: 228},
			strategy: layout.StrategyFlat,
		},
		{
			name:     "summary dots",
			items:    1000,
			width:    440,
			sizing:   layout.SummaryPixels,
			want:     layout.Plan{ColumnCount: 20, RowCount: 50, Virtualize: true, ViewportHeight: 240},
			strategy: layout.StrategyWindowed,
		},
		{
			name:     "empty list",
			items:    0,
			width:    900,
			sizing:   layout.DetailPixels,
			want:     layout.Plan{ColumnCount: 4, RowCount: 0, Virtualize: false, ViewportHeight: 0},
			strategy: layout.StrategyFlat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout.Compute(tt.items, tt.width, tt.sizing))

			rp := layout.Decide(tt.items, tt.width, tt.sizing)
			assert.Equal(t, tt.strategy, rp.Strategy)
			assert.Equal(t, tt.want, rp.Plan)
		})
	}
}

// TestCompute_Properties sweeps inputs and checks the packing invariants.
func TestCompute_Properties(t *testing.T) {
	sizings := []layout.Sizing{
		layout.DetailPixels,
		layout.SummaryPixels,
		layout.DetailTerminal,
		{ColumnWidth: 7, RowHeight: 2, VirtualizeThreshold: 0, MaxViewportHeight: 5},
	}
	counts := []int{0, 1, 2, 3, 13, 199, 200, 201, 399, 400, 401, 1000}
	widths := []int{0, 1, 21, 22, 219, 220, 221, 900, 4096}

	for _, s := range sizings {
		for _, n := range counts {
			for _, w := range widths {
				p := layout.Compute(n, w, s)
				msg := fmt.Sprintf("sizing=%+v items=%d width=%d plan=%+v", s, n, w, p)

				require.GreaterOrEqual(t, p.ColumnCount, 1, msg)
				require.GreaterOrEqual(t, p.RowCount, 0, msg)
				require.GreaterOrEqual(t, p.Capacity(), n, msg)
				if p.RowCount > 0 {
					require.Less(t, p.ColumnCount*(p.RowCount-1), n, msg)
				}
				require.Equal(t, n > s.VirtualizeThreshold, p.Virtualize, msg)
				require.LessOrEqual(t, p.ViewportHeight, s.MaxViewportHeight, msg)

				if w == 0 {
					require.Equal(t, layout.StrategyFlat, layout.Decide(n, w, s).Strategy, msg)
				}
			}
		}
	}
}

// TestCompute_ClampsInvalidInput verifies the engine degrades instead of panicking.
func TestCompute_ClampsInvalidInput(t *testing.T) {
	p := layout.Compute(-5, -100, layout.Sizing{})
	assert.Equal(t, 1, p.ColumnCount)
	assert.Equal(t, 0, p.RowCount)
	assert.False(t, p.Virtualize)
	assert.Equal(t, 0, p.ViewportHeight)

	p = layout.Compute(3, 10, layout.Sizing{ColumnWidth: 0, RowHeight: -1, MaxViewportHeight: 0})
	assert.Equal(t, 10, p.ColumnCount)
	assert.Equal(t, 1, p.RowCount)
	assert.True(t, p.Virtualize)
	assert.Equal(t, 1, p.ViewportHeight)
}

// TestPlan_IndexPositionRoundTrip checks the linear index mapping is invertible.
func TestPlan_IndexPositionRoundTrip(t *testing.T) {
	p := layout.Compute(500, 900, layout.DetailPixels)
	seen := make(map[int]bool, p.Capacity())

	for row := 0; row < p.RowCount; row++ {
		for col := 0; col < p.ColumnCount; col++ {
			idx := p.Index(row, col)
			require.False(t, seen[idx], "index %d produced twice", idx)
			seen[idx] = true

			r, c := p.Position(idx)
			require.Equal(t, row, r)
			require.Equal(t, col, c)
		}
	}
	assert.Len(t, seen, p.Capacity())
}

// TestPlan_Cell resolves populated and trailing slots.
func TestPlan_Cell(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	p := layout.Compute(len(items), 60, layout.Sizing{ColumnWidth: 20, RowHeight: 1, MaxViewportHeight: 10})
	require.Equal(t, 3, p.ColumnCount)
	require.Equal(t, 2, p.RowCount)

	c := p.Cell(1, 1, items)
	assert.True(t, c.Present)
	assert.Equal(t, "e", c.Item)
	assert.Equal(t, 4, c.Index)

	c = p.Cell(1, 2, items)
	assert.False(t, c.Present)
	assert.Equal(t, 5, c.Index)
	assert.Equal(t, "empty-1-2", c.Key().String())
	assert.True(t, c.Key().IsPlaceholder())
}

// TestKey_Unique verifies no two slots share a key, even when an item
// mimics the placeholder naming.
func TestKey_Unique(t *testing.T) {
	items := []string{"empty-1-2", "x", "y", "z", "w"}
	p := layout.Compute(len(items), 3, layout.Sizing{ColumnWidth: 1, RowHeight: 1, MaxViewportHeight: 10})

	keys := make(map[layout.Key]bool)
	for row := 0; row < p.RowCount; row++ {
		for col := 0; col < p.ColumnCount; col++ {
			k := p.Key(row, col, items)
			require.False(t, keys[k], "duplicate key %s", k)
			keys[k] = true
		}
	}
	assert.Len(t, keys, p.Capacity())
	assert.NotEqual(t, layout.ItemKey("empty-1-2"), layout.PlaceholderKey(1, 2))
	assert.Equal(t, layout.PlaceholderKey(1, 2), layout.PlaceholderKey(1, 2))
}

func TestSizing_Validate(t *testing.T) {
	require.NoError(t, layout.DetailPixels.Validate())
	require.NoError(t, layout.SummaryTerminal.Validate())

	err := layout.Sizing{ColumnWidth: 0, RowHeight: 1, VirtualizeThreshold: -1, MaxViewportHeight: 1}.Validate()
	require.ErrorIs(t, err, layout.ErrInvalidSizing)
	assert.Contains(t, err.Error(), "column_width")
	assert.Contains(t, err.Error(), "virtualize_threshold")
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "flat", layout.StrategyFlat.String())
	assert.Equal(t, "windowed", layout.StrategyWindowed.String())
	assert.Equal(t, "unknown", layout.Strategy(9).String())
}
