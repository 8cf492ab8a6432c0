package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rshade/proxygrid/internal/container"
	"github.com/rshade/proxygrid/internal/tui"
)

// NewRenderCmd creates the non-interactive render command.
func NewRenderCmd() *cobra.Command {
	var (
		flags   groupFlags
		width   int
		plain   bool
		noColor bool
		color   bool
	)

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Render a proxy group once",
		Long: `Renders a proxy group once and exits. The width is measured from the
terminal, or taken from --width. Unmeasured output (for example a pipe without
--width) renders every proxy one per row. Groups above the variant's
virtualization threshold show one viewport, scrolled to the active proxy.`,
		Example: `  # Render at the terminal width
  proxygrid render global.yaml

  # Render 120 columns wide without colors
  proxygrid render --width 120 --plain nodes.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadGroupInput(cmd, &flags, args)
			if err != nil {
				return err
			}
			obs := terminalObserver()
			if cmd.Flags().Changed("width") {
				obs = container.Static(width)
			}
			return renderGroup(cmd, in, obs, tui.DetectOutputMode(color, noColor, plain))
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "render width in columns instead of measuring the terminal")
	cmd.Flags().BoolVar(&plain, "plain", false, "plain text output")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")
	cmd.Flags().BoolVar(&color, "color", false, "force colors when not writing to a terminal")

	return cmd
}

// terminalObserver measures the terminal attached to stdout.
func terminalObserver() container.Observer {
	return container.Terminal(int(os.Stdout.Fd()))
}

// renderGroup measures the region through a container scoped to this call
// and prints one static rendering.
func renderGroup(cmd *cobra.Command, in groupInput, obs container.Observer, mode tui.OutputMode) error {
	switch mode {
	case tui.OutputModePlain:
		lipgloss.SetColorProfile(termenv.Ascii)
	case tui.OutputModeStyled, tui.OutputModeInteractive:
		if lipgloss.ColorProfile() == termenv.Ascii {
			lipgloss.SetColorProfile(termenv.ANSI256)
		}
	}

	return container.Scope(obs, func(c *container.Container) error {
		logger.Debug().Ctx(cmd.Context()).
			Int("width", c.Width()).
			Str("mode", mode.String()).
			Msg("rendering proxy group")
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatic(in.variant, in.sizing, in.props, c.Width(), in.group.Name))
		return err
	}, container.WithLogger(logger))
}
