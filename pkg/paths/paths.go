package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for coloring-tee
	EnvConfigDir = "COLORING_TEE_CONFIG_DIR"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name for coloring-tee files
	AppDirName = "coloring-tee"

	// ConfigFileName is the name of the per-user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "coloring-tee.log"
)

// Paths resolves the locations coloring-tee reads and writes
type Paths interface {
	ConfigDir() string
	UserConfigPath() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	xdgConfig string
	xdgState  string
}

// New resolves the directories from the current environment
func New() Paths {
	p := &paths{}

	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = ExpandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	// XDG_STATE_HOME is read directly so late changes to the environment apply
	if stateDir := os.Getenv(EnvStateHome); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, AppDirName)
	} else if homeDir, err := os.UserHomeDir(); err == nil {
		p.xdgState = filepath.Join(homeDir, ".local", "state", AppDirName)
	} else {
		p.xdgState = AppDirName
	}

	return p
}

// ConfigDir returns the coloring-tee config directory
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// UserConfigPath returns the per-user configuration file
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the coloring-tee state directory
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the path to the log file
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is left alone
	return path
}
