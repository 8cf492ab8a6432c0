package cli_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

// TestViewCmd_NonInteractiveRendersOnce verifies the fallback used when the
// output is not a terminal.
func TestViewCmd_NonInteractiveRendersOnce(t *testing.T) {
	skipOnTerminal(t)
	setupCLITest(t)

	stdout, stderr, err := execute(t, "view", "--generate", "4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "4 proxies")
	assert.Contains(t, stdout, "proxy-00004")
	assert.Contains(t, stderr, "rendering once")
	assert.NotContains(t, stdout, "rendering once")
}

// TestViewCmd_PickNeedsTerminal verifies --pick refuses to run without a
// terminal on stdin and stderr.
func TestViewCmd_PickNeedsTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd())) {
		t.Skip("stdin and stderr are terminals")
	}
	setupCLITest(t)

	_, _, err := execute(t, "view", "--pick", "--generate", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal on stdin and stderr")
}
