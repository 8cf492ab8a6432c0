//go:build windows

package container

import "os"

// Windows consoles have no resize signal; the terminal is measured once.
//
//nolint:gochecknoglobals // Platform signal table.
var resizeSignals []os.Signal
