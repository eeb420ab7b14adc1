package prompts

import "strings"

// BuildTask assembles the prompt for one operation: the task directive, the
// rendered source listing, then any extra instructions from the user.
func BuildTask(directive string, listing string, extra string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(directive))
	sb.WriteString("\n\n")
	sb.WriteString(listing)
	if extra != "" {
		sb.WriteString("\nAdditional instructions:\n")
		sb.WriteString(strings.TrimSpace(extra))
		sb.WriteString("\n")
	}
	return sb.String()
}
