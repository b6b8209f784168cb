package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/MilosSubotic/coloring-tee/pkg/errors"
)

// Export formats
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// SchemeRule is a rule in exported form
type SchemeRule struct {
	SearchString string `toml:"searchString" yaml:"searchString"`
	Color        string `toml:"color" yaml:"color"`
}

type exportDefaults struct {
	ColorSchemes []string `toml:"color_schemes" yaml:"color_schemes"`
	Bold         bool     `toml:"bold" yaml:"bold"`
}

type exportConfig struct {
	Defaults     exportDefaults          `toml:"defaults" yaml:"defaults"`
	ColorSchemes map[string][]SchemeRule `toml:"color_schemes" yaml:"color_schemes"`
}

type exportDocument struct {
	Root exportConfig `toml:"coloring_tee_config" yaml:"coloring_tee_config"`
}

// SchemeRules returns the rules of scheme in exported form
func (c *Config) SchemeRules(scheme string) []SchemeRule {
	list := c.Schemes[scheme]
	out := make([]SchemeRule, len(list))
	for i, rule := range list {
		out[i] = SchemeRule{SearchString: rule.Substring, Color: rule.Color.String()}
	}
	return out
}

// Export renders the effective configuration as TOML or YAML. The output
// loads back into the same configuration.
func (c *Config) Export(format string) ([]byte, error) {
	schemes := make(map[string][]SchemeRule, len(c.Schemes))
	for _, name := range c.SchemeNames() {
		schemes[name] = c.SchemeRules(name)
	}
	selected := c.Defaults.ColorSchemes
	if selected == nil {
		selected = []string{}
	}

	doc := exportDocument{Root: exportConfig{
		Defaults: exportDefaults{
			ColorSchemes: selected,
			Bold:         c.Defaults.Bold,
		},
		ColorSchemes: schemes,
	}}

	var (
		out []byte
		err error
	)
	switch strings.ToLower(format) {
	case FormatTOML:
		out, err = toml.Marshal(doc)
	case FormatYAML:
		out, err = yaml.Marshal(doc)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown export format %q", format).
			WithDetail("format", format)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to export configuration")
	}
	return out, nil
}
