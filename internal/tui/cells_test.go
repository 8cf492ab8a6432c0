package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/proxygrid/internal/grid"
	"github.com/rshade/proxygrid/internal/layout"
)

// TestProxyCell_Card verifies the bordered card layout.
func TestProxyCell_Card(t *testing.T) {
	out := ProxyCell{}.RenderCell(grid.CellContext{
		Item:       "hk-01",
		Current:    true,
		Selectable: true,
		Box:        grid.Box{Width: 24, Height: 3},
	})

	assert.Equal(t, 3, lipgloss.Height(out))
	assert.LessOrEqual(t, lipgloss.Width(out), 24)
	assert.Contains(t, out, "hk-01")
	assert.Contains(t, out, IconCurrent)
	assert.Contains(t, out, "╭", "cards use a rounded border")
}

// TestProxyCell_TruncatesByDisplayWidth verifies wide names are cut.
func TestProxyCell_TruncatesByDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		item string
	}{
		{name: "ascii", item: strings.Repeat("a", 40)},
		{name: "wide runes", item: strings.Repeat("香港", 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ProxyCell{}.RenderCell(grid.CellContext{
				Item:       tt.item,
				Selectable: true,
				Box:        grid.Box{Width: 24, Height: 3},
			})
			assert.Contains(t, out, truncateSuffix)
			assert.LessOrEqual(t, lipgloss.Width(out), 24)
		})
	}
}

// TestProxyCell_ShortBoxDropsBorder verifies single-line cells.
func TestProxyCell_ShortBoxDropsBorder(t *testing.T) {
	out := ProxyCell{}.RenderCell(grid.CellContext{
		Item:       "jp-02",
		Selectable: true,
		Box:        grid.Box{Width: 16, Height: 1},
	})
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.NotContains(t, out, "╭")
	assert.Contains(t, out, "jp-02")
}

// TestProxyDot verifies the glyph for each state.
func TestProxyDot(t *testing.T) {
	tests := []struct {
		name string
		ctx  grid.CellContext
		want string
	}{
		{name: "idle", ctx: grid.CellContext{Selectable: true}, want: IconSelectable},
		{name: "current", ctx: grid.CellContext{Selectable: true, Current: true}, want: IconCurrent},
		{name: "focused wins over current", ctx: grid.CellContext{Selectable: true, Current: true, Focused: true}, want: IconFocused},
		{name: "read-only", ctx: grid.CellContext{}, want: IconDisabled},
		{name: "read-only current", ctx: grid.CellContext{Current: true}, want: IconCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProxyDot{}.RenderCell(tt.ctx))
		})
	}
}

// TestParseVariant verifies variant names.
func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{in: "", want: VariantDetail},
		{in: "detail", want: VariantDetail},
		{in: " Summary ", want: VariantSummary},
		{in: "tiles", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.IsType(t, ProxyDot{}, VariantSummary.Cells())
	assert.IsType(t, ProxyCell{}, VariantDetail.Cells())
}

// TestDetectOutputMode verifies the routing rules.
func TestDetectOutputMode(t *testing.T) {
	tty := outputEnv{stdoutTTY: true, stdinTTY: true}
	tests := []struct {
		name       string
		env        outputEnv
		forceColor bool
		noColor    bool
		plain      bool
		want       OutputMode
	}{
		{name: "terminal", env: tty, want: OutputModeInteractive},
		{name: "plain flag", env: tty, plain: true, want: OutputModePlain},
		{name: "no-color flag", env: tty, noColor: true, want: OutputModePlain},
		{name: "NO_COLOR env", env: outputEnv{stdoutTTY: true, stdinTTY: true, noColor: true}, want: OutputModePlain},
		{name: "piped", env: outputEnv{}, want: OutputModePlain},
		{name: "piped forced color", env: outputEnv{}, forceColor: true, want: OutputModeStyled},
		{name: "stdin redirected", env: outputEnv{stdoutTTY: true}, want: OutputModeStyled},
		{name: "ci", env: outputEnv{stdoutTTY: true, stdinTTY: true, ci: true}, want: OutputModeStyled},
		{name: "dumb terminal", env: outputEnv{stdoutTTY: true, stdinTTY: true, dumb: true}, want: OutputModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectOutputMode(tt.env, tt.forceColor, tt.noColor, tt.plain))
		})
	}
	assert.Equal(t, "interactive", OutputModeInteractive.String())
	assert.Equal(t, "unknown", OutputMode(9).String())
}

// TestPickerAvailable verifies the picker only needs stdin and stderr.
func TestPickerAvailable(t *testing.T) {
	tests := []struct {
		name string
		env  outputEnv
		want bool
	}{
		{name: "command substitution", env: outputEnv{stdinTTY: true, stderrTTY: true}, want: true},
		{name: "full terminal", env: outputEnv{stdinTTY: true, stderrTTY: true, stdoutTTY: true}, want: true},
		{name: "NO_COLOR still picks", env: outputEnv{stdinTTY: true, stderrTTY: true, noColor: true}, want: true},
		{name: "stderr redirected", env: outputEnv{stdinTTY: true, stdoutTTY: true}, want: false},
		{name: "stdin redirected", env: outputEnv{stderrTTY: true, stdoutTTY: true}, want: false},
		{name: "dumb terminal", env: outputEnv{stdinTTY: true, stderrTTY: true, dumb: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickerAvailable(tt.env))
		})
	}
}

// TestRenderStatic_Flat verifies short lists render every proxy.
func TestRenderStatic_Flat(t *testing.T) {
	props := grid.Props{Items: []string{"hk-01", "jp-02", "us-03"}, Now: "jp-02"}
	out := RenderStatic(VariantDetail, layout.DetailTerminal, props, 0, "GLOBAL")

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "GLOBAL")
	assert.Contains(t, lines[0], "3 proxies")
	assert.Contains(t, lines[0], "now jp-02")
	for _, item := range props.Items {
		assert.Contains(t, out, item)
	}
	assert.Len(t, lines, 1+3*3, "width 0 stacks one card per row")
}

// TestRenderStatic_Windowed verifies long lists show the viewport around now.
func TestRenderStatic_Windowed(t *testing.T) {
	props := grid.Props{Items: proxies(500), Now: "p300"}
	out := RenderStatic(VariantDetail, layout.DetailTerminal, props, 240, "")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1+30+1)
	assert.Contains(t, lines[0], "proxies")
	assert.Contains(t, out, "p300")
	assert.NotContains(t, out, "p0 ")
	assert.Contains(t, lines[len(lines)-1], "rows 22-31 of 50")
}
