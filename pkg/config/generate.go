package config

import (
	"strings"
)

// GenerateConfigContent returns the configuration template with every
// value commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultConfigContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that are not table headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep table headers
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") && !strings.Contains(trimmed, "=") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
