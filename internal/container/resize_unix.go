//go:build !windows

package container

import (
	"os"
	"syscall"
)

//nolint:gochecknoglobals // Platform signal table.
var resizeSignals = []os.Signal{syscall.SIGWINCH}
