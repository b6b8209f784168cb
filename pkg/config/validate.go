package config

import (
	"sort"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/errors"
	"github.com/MilosSubotic/coloring-tee/pkg/rules"
)

// validate checks every scheme rule and fills cfg.Schemes
func validate(cfg *Config) error {
	names := make([]string, 0, len(cfg.ColorSchemes))
	for name := range cfg.ColorSchemes {
		names = append(names, name)
	}
	sort.Strings(names)

	schemes := make(rules.Schemes, len(names))
	for _, name := range names {
		entries := cfg.ColorSchemes[name]
		list := make([]rules.Rule, 0, len(entries))
		for i, entry := range entries {
			rule, err := entry.toRule()
			if err != nil {
				return err.WithDetail("scheme", name).WithDetail("rule", i+1)
			}
			list = append(list, rule)
		}
		schemes[name] = list
	}

	cfg.Schemes = schemes
	return nil
}

func (e RuleEntry) toRule() (rules.Rule, *errors.TeeError) {
	if e.SearchString == nil {
		return rules.Rule{}, errors.New(errors.ErrConfigInvalid, "rule is missing searchString")
	}
	if e.Color == nil {
		return rules.Rule{}, errors.Newf(errors.ErrConfigInvalid, "rule %q is missing color", *e.SearchString)
	}

	c, err := colors.ParseColor(*e.Color)
	if err != nil {
		return rules.Rule{}, errors.Wrapf(err, errors.ErrConfigInvalid, "rule %q", *e.SearchString).
			WithDetail("color", *e.Color)
	}
	return rules.Rule{Substring: *e.SearchString, Color: c}, nil
}
