package config

import (
	"sort"

	"github.com/MilosSubotic/coloring-tee/pkg/rules"
)

// RootKey is the top-level table holding all coloring-tee settings
const RootKey = "coloring_tee_config"

// Config is the decoded coloring_tee_config table
type Config struct {
	Defaults     Defaults               `koanf:"defaults"`
	ColorSchemes map[string][]RuleEntry `koanf:"color_schemes"`

	// Schemes holds ColorSchemes after validation
	Schemes rules.Schemes `koanf:"-"`
	// Source is the file the configuration was read from, empty for the
	// embedded template
	Source string `koanf:"-"`
}

// Defaults are the settings used when the matching flag is not given
type Defaults struct {
	ColorSchemes []string `koanf:"color_schemes"`
	Bold         bool     `koanf:"bold"`
}

// RuleEntry is one rule as written in the file. Pointers tell a missing
// field apart from an empty one.
type RuleEntry struct {
	SearchString *string `koanf:"searchString"`
	Color        *string `koanf:"color"`
}

// SchemeNames returns the configured scheme names, sorted
func (c *Config) SchemeNames() []string {
	names := make([]string, 0, len(c.Schemes))
	for name := range c.Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
