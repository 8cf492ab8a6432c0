package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/proxygrid/internal/layout"
)

type planOutput struct {
	Preset   string        `json:"preset"   yaml:"preset"`
	Items    int           `json:"items"    yaml:"items"`
	Width    int           `json:"width"    yaml:"width"`
	Sizing   layout.Sizing `json:"sizing"   yaml:"sizing"`
	Strategy string        `json:"strategy" yaml:"strategy"`
	Plan     layout.Plan   `json:"plan"     yaml:"plan"`
}

func TestPlanCmd_JSON(t *testing.T) {
	setupCLITest(t)

	tests := []struct {
		name         string
		args         []string
		wantStrategy string
		wantPlan     layout.Plan
	}{
		{
			name:         "large list in a wide container",
			args:         []string{"--items", "500", "--width", "900", "--preset", "detail-px"},
			wantStrategy: "windowed",
			wantPlan:     layout.Plan{ColumnCount: 4, RowCount: 125, Virtualize: true, ViewportHeight: 600},
		},
		{
			name:         "short list",
			args:         []string{"--items", "50", "--width", "900", "--preset", "detail-px"},
			wantStrategy: "flat",
			wantPlan:     layout.Plan{ColumnCount: 4, RowCount: 13, Virtualize: false, ViewportHeight: 600},
		},
		{
			name:         "unmeasured width stays flat",
			args:         []string{"--items", "500", "--preset", "detail-px"},
			wantStrategy: "flat",
			wantPlan:     layout.Plan{ColumnCount: 1, RowCount: 500, Virtualize: true, ViewportHeight: 600},
		},
		{
			name:         "terminal detail preset",
			args:         []string{"--items", "500", "--width", "240"},
			wantStrategy: "windowed",
			wantPlan:     layout.Plan{ColumnCount: 10, RowCount: 50, Virtualize: true, ViewportHeight: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"plan", "--output", "json"}, tt.args...)...)
			require.NoError(t, err)

			var got planOutput
			require.NoError(t, json.Unmarshal([]byte(stdout), &got))
			assert.Equal(t, tt.wantStrategy, got.Strategy)
			assert.Equal(t, tt.wantPlan, got.Plan)
		})
	}
}

func TestPlanCmd_YAML(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := execute(t, "plan", "--items", "1000", "--width", "440", "--preset", "summary-px", "-o", "yaml")
	require.NoError(t, err)

	var got planOutput
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "summary-px", got.Preset)
	assert.Equal(t, layout.SummaryPixels, got.Sizing)
	assert.Equal(t, layout.Plan{ColumnCount: 20, RowCount: 50, Virtualize: true, ViewportHeight: 240}, got.Plan)
}

func TestPlanCmd_Table(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := execute(t, "plan", "--items", "10", "--width", "900", "--preset", "detail-px")
	require.NoError(t, err)
	assert.Contains(t, stdout, "STRATEGY    flat")
	assert.Contains(t, stdout, "COLUMNS     4")
	assert.Contains(t, stdout, "VIEWPORT    228")
}

func TestPlanCmd_Errors(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "plan", "--preset", "huge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")

	_, _, err = execute(t, "plan", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
