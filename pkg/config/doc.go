// Package config loads the coloring-tee configuration: the default flags and
// the named color schemes the rule matcher is built from.
//
// Configuration is layered with koanf, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the configuration file, TOML or YAML by extension; without one the
//     embedded template (embedded/config.toml) is used
//  3. COLORING_TEE_DEFAULTS_* environment variables
//  4. overrides from command-line flags
//
// The file is validated when loaded. A rule without searchString or color,
// or with an unknown color name, is a fatal configuration error.
package config
