// Package rules classifies input lines by substring rules.
//
// A Rule maps a substring to a color. Rules are grouped into named color
// schemes in the configuration:
//
//	[coloring_tee_config.color_schemes]
//	gcc = [
//	  { searchString = "error", color = "red" },
//	  { searchString = "warning", color = "yellow" },
//	]
//
// The operator selects schemes with --color-schemes. The rules of the
// selected schemes are concatenated in selection order and a line gets the
// color of the first rule whose substring it contains. Later rules never
// override an earlier match.
package rules
