// Package paths provides centralized path handling for coloring-tee.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/coloring-tee (config.toml, created on first run)
//   - State: $XDG_STATE_HOME/coloring-tee (coloring-tee.log)
//
// # Environment Variables
//
//   - COLORING_TEE_CONFIG_DIR: Override the config directory
//   - XDG_CONFIG_HOME, XDG_STATE_HOME: Standard XDG locations
//
// # Usage
//
//	p := paths.New()
//	cfg := p.UserConfigPath() // /home/user/.config/coloring-tee/config.toml
//	log := p.LogFilePath()    // /home/user/.local/state/coloring-tee/coloring-tee.log
package paths
