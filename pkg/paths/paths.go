// Package paths provides centralized path handling for springclean.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/springclean/pkg/errors"
)

// Environment variable names
const (
	// EnvLayoutPath overrides the layout document location
	EnvLayoutPath = "SPRINGCLEAN_LAYOUT"

	// EnvDataDir overrides the XDG data directory for springclean
	EnvDataDir = "SPRINGCLEAN_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for springclean
	EnvConfigDir = "SPRINGCLEAN_CONFIG_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for springclean-specific files
	AppDirName = "springclean"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "springclean.toml"

	// BackupsDir is the subdirectory for layout backups
	BackupsDir = "backups"

	// LogFileName is the name of the log file
	LogFileName = "springclean.log"
)

// Paths provides centralized path management for springclean
type Paths interface {
	LayoutPath() string
	DataDir() string
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	BackupsDir() string
	LogFilePath() string
}

type paths struct {
	layoutPath string
	xdgData    string
	xdgConfig  string
	xdgState   string
}

// New creates a new Paths instance for the given layout document path.
// If layoutPath is empty, it is taken from SPRINGCLEAN_LAYOUT; an empty
// result is allowed for commands that do not touch the layout.
func New(layoutPath string) (Paths, error) {
	p := &paths{}

	if layoutPath == "" {
		layoutPath = os.Getenv(EnvLayoutPath)
	}
	if layoutPath != "" {
		abs, err := filepath.Abs(expandHome(layoutPath))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to get absolute path for layout %s", layoutPath)
		}
		p.layoutPath = abs
	}

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if dataDir := os.Getenv(EnvDataDir); dataDir != "" {
		p.xdgData = expandHome(dataDir)
	} else {
		p.xdgData = filepath.Join(xdg.DataHome, AppDirName)
	}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// XDG library exposes StateHome since v0.4, but keep the manual
	// override so tests can redirect it
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

func (p *paths) LayoutPath() string { return p.layoutPath }
func (p *paths) DataDir() string    { return p.xdgData }
func (p *paths) ConfigDir() string  { return p.xdgConfig }
func (p *paths) StateDir() string   { return p.xdgState }

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) BackupsDir() string {
	return filepath.Join(p.xdgData, BackupsDir)
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
