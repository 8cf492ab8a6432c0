package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/proxygrid/internal/config"
	"github.com/rshade/proxygrid/internal/layout"
)

// TestConfigInit verifies that "config init" writes the default config and
// a .gitignore into PROXYGRID_HOME.
func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	stdout, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized at")
	assert.Contains(t, stdout, "Created .gitignore")

	loaded, err := config.Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, layout.DetailTerminal, loaded.Grid.Detail)

	data, err := os.ReadFile(filepath.Join(home, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, config.GitignoreContent(home, filepath.Join(home, "logs", "proxygrid.log")), string(data))
	assert.Contains(t, string(data), "logs/\n")
}

// TestConfigInit_ExistingRequiresForce verifies --force semantics.
func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output:\n  variant: summary\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".gitignore"), []byte("custom\n"), 0o600))

	_, _, err := execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	stdout, _, err := execute(t, "config", "init", "--force")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "Created .gitignore")

	data, err := os.ReadFile(filepath.Join(home, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "custom\n", string(data), "an existing .gitignore is never overwritten")
}

// TestConfigValidate verifies valid and invalid configurations.
func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	stdout, _, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration is valid")
	assert.Contains(t, stdout, "Detail cell: 24x3, virtualize above 200, viewport up to 30")

	bad := writeList(t, "bad.yaml", "output:\n  variant: huge\n")
	_, _, err = execute(t, "--config", bad, "config", "validate")
	require.Error(t, err)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "output.variant")
}

// TestConfigValidate_BrokenDefaultFile verifies a default config file that
// does not parse fails validation instead of passing as the defaults.
func TestConfigValidate_BrokenDefaultFile(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("grid: [unclosed"), 0o600))

	stdout, _, err := execute(t, "config", "validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing overlay YAML")
	assert.NotContains(t, stdout, "Configuration is valid")

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("grid:\n  overscan: -2\n"), 0o600))
	_, _, err = execute(t, "config", "validate")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

// TestConfigFlag_MissingFile verifies an explicit --config must exist.
func TestConfigFlag_MissingFile(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "plan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
