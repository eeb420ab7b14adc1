package chains

import "strings"

// ParseSteps splits a comma-separated step list into command names,
// trimming whitespace and dropping empty tokens.
func ParseSteps(s string) []string {
	var steps []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		steps = append(steps, part)
	}
	return steps
}
