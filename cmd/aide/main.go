package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/aide/actions"
	"github.com/reusee/aide/backups"
	"github.com/reusee/aide/chains"
	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if stdin := getStdinContent(); len(stdin) > 0 {
		scope = scope.Fork(func() actions.ExtraInstructions {
			return actions.ExtraInstructions(stdin)
		})
	}

	scope.Call(func(
		logger logs.Logger,
		selected actions.SelectedAction,
		revert backups.RevertRequest,
		list backups.ListRequest,
		store *backups.Store,
		chainRequest chains.Request,
		runChain chains.Run,
	) {

		switch {

		case selected.Action != nil:
			logger.InfoContext(ctx, "run",
				"command", selected.Action.Name(),
				"target", selected.Target,
			)
			if err := selected.Action.Run(ctx, selected.Target); err != nil {
				fmt.Fprintf(os.Stderr, "%s failed: %v\n", selected.Action.Name(), err)
				os.Exit(1)
			}

		case revert.Requested:
			restored, err := store.Restore(revert.Path, revert.ID)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				os.Exit(1)
			}
			fmt.Printf("restored %s (%s, %s)\n",
				restored.FilePath,
				restored.Operation,
				restored.Timestamp,
			)

		case list.Requested:
			printBackups(store, list.Path)

		case chainRequest.Requested:
			result, err := runChain(ctx, chainRequest.Target, chainRequest.Steps, chainRequest.Options)
			if err != nil {
				fmt.Fprintf(os.Stderr, "chain failed: %v\n", err)
				os.Exit(1)
			}
			printChainResult(result)

		default:
			cmds.GlobalExecutor.PrintUsage()
			fmt.Println("config keys:")
			for _, key := range configs.Keys(scope) {
				fmt.Printf("\t%s\n", key)
			}

		}

	})

}

func printBackups(store *backups.Store, path string) {
	if path != "" {
		entries := store.List(path)
		if len(entries) == 0 {
			fmt.Printf("no backups for file: %s\n", path)
			return
		}
		for _, entry := range entries {
			fmt.Printf("%s\t%s\t%s\n", entry.ID, entry.Timestamp, entry.Operation)
		}
		return
	}
	entries := store.ListAll()
	if len(entries) == 0 {
		fmt.Println("no backup history")
		return
	}
	for _, entry := range entries {
		fmt.Printf("%s\t%s\t%s\t%s\n", entry.ID, entry.Timestamp, entry.Operation, entry.FilePath)
	}
}

// printChainResult reports per-step outcomes. Step failures are not a
// process failure: the chain ran to a conclusion, so the exit code stays
// zero and the step lines carry the news.
func printChainResult(result *chains.Result) {
	for _, step := range result.Steps {
		if step.Err != nil {
			fmt.Printf("%s: %s: %v\n", step.Name, step.Status, step.Err)
		} else {
			fmt.Printf("%s: %s\n", step.Name, step.Status)
		}
	}
	if result.Aborted != nil {
		fmt.Printf("chain aborted at %s\n", result.Aborted.Name)
	} else {
		fmt.Println("chain completed")
	}
}

func getStdinContent() (ret []byte) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return
}
