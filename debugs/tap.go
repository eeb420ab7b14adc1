package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/aide/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap suspends the program in a starlark REPL with the given values
// exposed as globals. It returns when the REPL reads EOF.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap end: "+what)

		mappings := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			mappings[name] = starlarkValue(value)
		}
		repl.REPLOptions(
			&syntax.FileOptions{
				Set:             true,
				While:           true,
				TopLevelControl: true,
			},
			&starlark.Thread{Name: "tap"},
			mappings,
		)
	}
}
