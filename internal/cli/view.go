package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/tui"
)

// NewViewCmd creates the interactive view command.
func NewViewCmd() *cobra.Command {
	var (
		flags groupFlags
		pick  bool
	)

	cmd := &cobra.Command{
		Use:   "view [files...]",
		Short: "Browse a proxy group in an interactive grid",
		Long: `Opens a proxy group in a responsive grid. Large groups are virtualized:
only the rows on screen are drawn, so tens of thousands of proxies stay
responsive. Files are YAML selector groups, YAML lists, or text files with one
proxy per line. Use '-' to read standard input.

When the output is not an interactive terminal the group is rendered once,
as with "proxygrid render".

With --pick the grid is drawn on stderr and the selected proxy is printed
to stdout, so it works inside command substitution. It needs a terminal on
stdin and stderr.`,
		Example: `  # Browse a group
  proxygrid view global.yaml

  # Compact dots for very large groups
  proxygrid view --variant summary --generate 20000

  # Pick a proxy from a shell script
  proxy=$(proxygrid view --pick nodes.txt)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, &flags, pick, args)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&pick, "pick", false, "exit after the first selection and print the proxy name")

	return cmd
}

func runView(cmd *cobra.Command, flags *groupFlags, pick bool, files []string) error {
	in, err := loadGroupInput(cmd, flags, files)
	if err != nil {
		return err
	}

	if pick {
		if !tui.PickerAvailable() {
			return errors.New("--pick needs an interactive terminal on stdin and stderr")
		}
		if !in.props.Selectable {
			return errors.New("--pick cannot be combined with --selectable=false")
		}
		// The frame goes to stderr; style it for that stream.
		lipgloss.SetColorProfile(termenv.NewOutput(os.Stderr).EnvColorProfile())
	} else if mode := tui.DetectOutputMode(false, false, false); mode != tui.OutputModeInteractive {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), tui.WarnStyle.Render("not an interactive terminal, rendering once"))
		logger.Debug().Ctx(cmd.Context()).Str("mode", mode.String()).Msg("not interactive, rendering once")
		return renderGroup(cmd, in, terminalObserver(), mode)
	}

	cfg := config.GetGlobalConfig()
	opts := []tui.Option{
		tui.WithOverscan(cfg.Grid.Overscan),
		tui.WithTitle(in.group.Name),
		tui.WithHelp(cfg.Output.ShowHelp),
	}
	if pick {
		opts = append(opts, tui.WithPicker())
	}
	model := tui.NewProxyListModel(cmd.Context(), in.variant, in.sizing, in.props, opts...)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(cmd.Context()),
	}
	if pick {
		programOpts = append(programOpts, tea.WithOutput(os.Stderr))
	}

	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if !pick {
		return nil
	}

	result, ok := final.(tui.ProxyListModel)
	if !ok || result.Activated() == "" {
		return &ExitError{ExitCode: exitNoSelection, Reason: "no proxy selected"}
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Activated())
	return err
}
