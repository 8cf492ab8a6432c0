package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/layout"
)

// Presets accepted by "plan --preset".
const (
	presetDetail    = "detail"
	presetSummary   = "summary"
	presetDetailPx  = "detail-px"
	presetSummaryPx = "summary-px"
)

// Output formats accepted by "plan --output".
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

// planReport is the machine-readable output of the plan command.
type planReport struct {
	Preset   string        `json:"preset"   yaml:"preset"`
	Items    int           `json:"items"    yaml:"items"`
	Width    int           `json:"width"    yaml:"width"`
	Sizing   layout.Sizing `json:"sizing"   yaml:"sizing"`
	Strategy string        `json:"strategy" yaml:"strategy"`
	Plan     layout.Plan   `json:"plan"     yaml:"plan"`
}

// NewPlanCmd creates the plan command, which prints the layout decision for
// an item count and a width without rendering anything.
func NewPlanCmd() *cobra.Command {
	var (
		items  int
		width  int
		preset string
		output string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the grid layout for an item count and width",
		Long: `Computes the grid layout: column and row counts, whether the list is
virtualized, and the viewport height. Terminal presets (detail, summary) come
from the configuration; the -px presets use the browser pixel sizes.`,
		Example: `  # Terminal detail cards at 160 columns
  proxygrid plan --items 500 --width 160

  # Browser summary dots in a 440px container, as YAML
  proxygrid plan --items 1000 --width 440 --preset summary-px --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sizing, err := presetSizing(preset)
			if err != nil {
				return err
			}
			rp := layout.Decide(items, width, sizing)
			report := planReport{
				Preset:   preset,
				Items:    max(items, 0),
				Width:    rp.Width,
				Sizing:   sizing,
				Strategy: rp.Strategy.String(),
				Plan:     rp.Plan,
			}
			logger.Debug().Ctx(cmd.Context()).
				Str("preset", preset).
				Int("items", items).
				Int("width", width).
				Str("strategy", report.Strategy).
				Msg("layout computed")
			return writePlan(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().IntVar(&items, "items", 0, "number of proxies")
	cmd.Flags().IntVar(&width, "width", 0, "container width (columns, or pixels for -px presets)")
	cmd.Flags().StringVar(&preset, "preset", presetDetail, "sizing preset: detail, summary, detail-px or summary-px")
	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table, json or yaml")

	return cmd
}

func presetSizing(preset string) (layout.Sizing, error) {
	cfg := config.GetGlobalConfig()
	switch strings.ToLower(preset) {
	case presetDetail:
		return cfg.Grid.Detail, nil
	case presetSummary:
		return cfg.Grid.Summary, nil
	case presetDetailPx:
		return layout.DetailPixels, nil
	case presetSummaryPx:
		return layout.SummaryPixels, nil
	default:
		return layout.Sizing{}, fmt.Errorf("unknown preset %q (want %s, %s, %s or %s)",
			preset, presetDetail, presetSummary, presetDetailPx, presetSummaryPx)
	}
}

func writePlan(w io.Writer, format string, r planReport) error {
	switch strings.ToLower(format) {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		return enc.Close()
	case outputTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "PRESET\t%s\n", r.Preset)
		fmt.Fprintf(tw, "ITEMS\t%d\n", r.Items)
		fmt.Fprintf(tw, "WIDTH\t%d\n", r.Width)
		fmt.Fprintf(tw, "CELL\t%dx%d\n", r.Sizing.ColumnWidth, r.Sizing.RowHeight)
		fmt.Fprintf(tw, "STRATEGY\t%s\n", r.Strategy)
		fmt.Fprintf(tw, "COLUMNS\t%d\n", r.Plan.ColumnCount)
		fmt.Fprintf(tw, "ROWS\t%d\n", r.Plan.RowCount)
		fmt.Fprintf(tw, "VIRTUALIZE\t%t\n", r.Plan.Virtualize)
		fmt.Fprintf(tw, "VIEWPORT\t%d\n", r.Plan.ViewportHeight)
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
