package rules

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/MilosSubotic/coloring-tee/pkg/colors"
	"github.com/MilosSubotic/coloring-tee/pkg/logging"
)

// Matcher holds an ordered, immutable rule list
type Matcher struct {
	rules  []Rule
	logger zerolog.Logger
}

// New creates a matcher over rules, in order
func New(rules ...Rule) *Matcher {
	m := &Matcher{
		rules:  make([]Rule, len(rules)),
		logger: logging.GetLogger("rules.matcher"),
	}
	copy(m.rules, rules)
	return m
}

// FromSchemes builds a matcher from the selected schemes of table, in
// selection order. A scheme selected twice contributes its rules once.
// Selected names missing from table are returned as unknown.
func FromSchemes(table Schemes, selected []string) (*Matcher, []string) {
	var (
		list    []Rule
		unknown []string
	)
	seen := make(map[string]bool, len(selected))
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true

		schemeRules, ok := table[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		list = append(list, schemeRules...)
	}

	m := New(list...)
	m.logger.Debug().
		Strs("schemes", selected).
		Strs("unknown", unknown).
		Int("ruleCount", len(list)).
		Msg("Built rule matcher")
	return m, unknown
}

// Classify returns the color of the first rule whose substring occurs in
// line. The boolean is false when no rule matches.
func (m *Matcher) Classify(line string) (colors.Color, bool) {
	for _, rule := range m.rules {
		if strings.Contains(line, rule.Substring) {
			return rule.Color, true
		}
	}
	return 0, false
}

// Rules returns a copy of the rule list
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Len returns the number of rules
func (m *Matcher) Len() int {
	return len(m.rules)
}
