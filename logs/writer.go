package logs

import (
	"io"
	"os"
)

// Writer is where the terminal handler writes. Tests fork it to capture
// output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
