package rules

import "github.com/MilosSubotic/coloring-tee/pkg/colors"

// Rule colors every line containing Substring. An empty substring matches
// every line.
type Rule struct {
	Substring string
	Color     colors.Color
}

// Schemes maps color scheme names to their ordered rules
type Schemes map[string][]Rule
