package cmds

import (
	"fmt"
	"os"
)

// GlobalExecutor is the executor package init functions define their
// verbs and flags on.
var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args against the global executor. On error it prints the
// error and the usage, then exits nonzero.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		GlobalExecutor.PrintUsage()
		os.Exit(1)
	}
}
