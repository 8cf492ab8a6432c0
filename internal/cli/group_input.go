package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/grid"
	"github.com/rshade/proxygrid/internal/layout"
	"github.com/rshade/proxygrid/internal/source"
	"github.com/rshade/proxygrid/internal/tui"
)

// groupFlags are the input flags shared by view and render.
type groupFlags struct {
	variant    string
	now        string
	generate   int
	prefix     string
	selectable bool
}

func (f *groupFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "", "display variant: detail or summary (default from config)")
	cmd.Flags().StringVar(&f.now, "now", "", "mark this proxy as the active one")
	cmd.Flags().IntVar(&f.generate, "generate", 0, "ignore files and generate N synthetic proxies")
	cmd.Flags().StringVar(&f.prefix, "prefix", "proxy", "name prefix for --generate")
	cmd.Flags().BoolVar(&f.selectable, "selectable", true, "allow selecting proxies (default from config)")
}

// groupInput is a loaded group together with its display settings.
type groupInput struct {
	group   source.Group
	variant tui.Variant
	sizing  layout.Sizing
	props   grid.Props
}

// loadGroupInput resolves the variant, reads the proxy list and builds the
// grid props. With no files, a piped stdin is read.
func loadGroupInput(cmd *cobra.Command, f *groupFlags, files []string) (groupInput, error) {
	cfg := config.GetGlobalConfig()

	name := f.variant
	if name == "" {
		name = cfg.Output.Variant
	}
	variant, err := tui.ParseVariant(name)
	if err != nil {
		return groupInput{}, err
	}

	var group source.Group
	switch {
	case f.generate > 0:
		group = source.Generate(f.generate, f.prefix)
	case len(files) == 0 && isTerminal(os.Stdin):
		return groupInput{}, errors.New("no proxy list given: pass files, '-' for stdin, or --generate N")
	case len(files) == 0:
		group, err = source.Load(cmd.Context(), []string{source.StdinPath}, cmd.InOrStdin())
	default:
		group, err = source.Load(cmd.Context(), files, cmd.InOrStdin())
	}
	if err != nil {
		return groupInput{}, err
	}
	if f.now != "" {
		group.Now = f.now
	}

	selectable := cfg.Output.Selectable
	if cmd.Flags().Changed("selectable") {
		selectable = f.selectable
	}

	logger.Debug().Ctx(cmd.Context()).
		Str("group", group.Name).
		Int("proxies", len(group.All)).
		Str("variant", string(variant)).
		Msg("proxy group loaded")

	return groupInput{
		group:   group,
		variant: variant,
		sizing:  cfg.Sizing(string(variant)),
		props:   grid.Props{Items: group.All, Now: group.Now, Selectable: selectable},
	}, nil
}
