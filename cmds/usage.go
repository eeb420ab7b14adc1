package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	fmt.Fprintf(os.Stdout, "commands:\n")
	writeCommands(os.Stdout, e.commands, 1)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if slices.Contains(command.Aliases, name) {
			// listed under its primary name
			continue
		}
		fmt.Fprintf(w, "%s%s",
			strings.Repeat("  ", depth),
			strings.Join(append([]string{name}, command.Aliases...), " | "),
		)
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
