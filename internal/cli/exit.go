package cli

import "fmt"

// ExitError ends the process with a specific exit code.
type ExitError struct {
	ExitCode int
	Reason   string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s (exit code %d)", e.Reason, e.ExitCode)
}

// exitNoSelection is returned by "view --pick" when the picker closes
// without a selection.
const exitNoSelection = 1
