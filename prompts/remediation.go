package prompts

import "fmt"

// Remediation is the fallback response when an assistant invocation fails.
// It is printed to the user in place of the response and is never written to
// a file.
func Remediation(operation string, assistant string, err error) string {
	return fmt.Sprintf(
		"could not run %q: assistant %q failed: %v\n"+
			"check the assistants list in aide.cue, or set AIDE_ASSISTANT_COMMAND "+
			"to a command that reads a prompt on stdin and writes the response to stdout",
		operation, assistant, err,
	)
}
