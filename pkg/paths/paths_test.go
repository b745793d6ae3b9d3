// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Environment variables
// PURPOSE: Test XDG path resolution and environment overrides

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/springclean/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitLayoutPath(t *testing.T) {
	p, err := paths.New("/var/mobile/IconState.plist")
	require.NoError(t, err)

	assert.Equal(t, "/var/mobile/IconState.plist", p.LayoutPath())
}

func TestNew_LayoutPathFromEnv(t *testing.T) {
	t.Setenv(paths.EnvLayoutPath, "/tmp/layout.plist")

	p, err := paths.New("")
	require.NoError(t, err)

	assert.Equal(t, "/tmp/layout.plist", p.LayoutPath())
}

func TestNew_NoLayoutPathIsAllowed(t *testing.T) {
	t.Setenv(paths.EnvLayoutPath, "")

	p, err := paths.New("")
	require.NoError(t, err)

	assert.Empty(t, p.LayoutPath())
}

func TestEnvOverrides(t *testing.T) {
	dataDir := t.TempDir()
	configDir := t.TempDir()
	stateDir := t.TempDir()

	t.Setenv(paths.EnvDataDir, dataDir)
	t.Setenv(paths.EnvConfigDir, configDir)
	t.Setenv("XDG_STATE_HOME", stateDir)

	p, err := paths.New("")
	require.NoError(t, err)

	assert.Equal(t, dataDir, p.DataDir())
	assert.Equal(t, configDir, p.ConfigDir())
	assert.Equal(t, filepath.Join(stateDir, paths.AppDirName), p.StateDir())
	assert.Equal(t, filepath.Join(configDir, paths.ConfigFileName), p.ConfigFilePath())
	assert.Equal(t, filepath.Join(dataDir, paths.BackupsDir), p.BackupsDir())
	assert.Equal(t, filepath.Join(stateDir, paths.AppDirName, paths.LogFileName), p.LogFilePath())
}
