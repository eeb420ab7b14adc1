package prompts

import (
	"bufio"
	"strings"
)

// ExtractCode returns the content of the first fenced code block in text.
// The opening fence may carry a language tag. No opening fence, or a fence
// that never closes, yields "": an incomplete response must not be written
// over a source file.
func ExtractCode(text string) string {
	var sb strings.Builder
	inFence := false
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !inFence {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				inFence = true
			}
			continue
		}
		if strings.TrimSpace(line) == "```" {
			return sb.String()
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return ""
}
