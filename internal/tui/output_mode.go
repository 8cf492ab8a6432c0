package tui

import (
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// OutputMode is how the CLI presents a proxy group.
type OutputMode int

const (
	// OutputModePlain prints uncolored text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints colored, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the output mode for stdout. plain wins over
// everything; noColor and NO_COLOR disable styling; forceColor keeps styling
// on a non-terminal. Only a terminal on both stdin and stdout, outside CI,
// gets the interactive mode.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(currentEnv(), forceColor, noColor, plain)
}

// PickerAvailable reports whether a picker can run with its frame on stderr.
// stdout is not consulted, so the picker works inside command substitution.
func PickerAvailable() bool {
	return pickerAvailable(currentEnv())
}

type outputEnv struct {
	stdoutTTY bool
	stderrTTY bool
	stdinTTY  bool
	noColor   bool
	ci        bool
	dumb      bool
}

func currentEnv() outputEnv {
	return outputEnv{
		stdoutTTY: term.IsTerminal(int(os.Stdout.Fd())),
		stderrTTY: term.IsTerminal(int(os.Stderr.Fd())),
		stdinTTY:  term.IsTerminal(int(os.Stdin.Fd())),
		noColor:   termenv.EnvNoColor(),
		ci:        os.Getenv("CI") != "",
		dumb:      os.Getenv("TERM") == "dumb",
	}
}

func pickerAvailable(env outputEnv) bool {
	return env.stdinTTY && env.stderrTTY && !env.dumb
}

func detectOutputMode(env outputEnv, forceColor, noColor, plain bool) OutputMode {
	switch {
	case plain:
		return OutputModePlain
	case noColor || env.noColor:
		return OutputModePlain
	case forceColor && !env.stdoutTTY:
		return OutputModeStyled
	case !env.stdoutTTY || env.dumb:
		return OutputModePlain
	case env.stdinTTY && !env.ci:
		return OutputModeInteractive
	default:
		return OutputModeStyled
	}
}
