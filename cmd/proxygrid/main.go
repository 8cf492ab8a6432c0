package main

import (
	"errors"
	"os"

	"github.com/rshade/proxygrid/internal/cli"
	"github.com/rshade/proxygrid/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	return extractExitCode(root.Execute())
}

// extractExitCode maps a command error to the process exit code. An
// ExitError carries its own code; any other error exits with 1.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	return 1
}
