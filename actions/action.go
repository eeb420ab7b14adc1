package actions

import (
	"context"

	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
)

type Action interface {
	Name() string
	RequiresDirectory() bool
	Mutates() bool
	Run(ctx context.Context, target string) error
	DefineCmds()
}

var (
	actionNameFlag   string
	actionTargetFlag string
)

func (Module) AllActions(
	document ActionDocument,
	explain ActionExplain,
	refactor ActionRefactor,
	test ActionTest,
	docstrings ActionDocstrings,
	security ActionSecurity,
) []Action {
	return []Action{
		document,
		explain,
		refactor,
		test,
		docstrings,
		security,
	}
}

// Actions is the registry the chain executor and the CLI dispatch on.
type Actions map[string]Action

func (Module) Actions(
	allActions []Action,
) Actions {
	ret := make(Actions, len(allActions))
	for _, action := range allActions {
		ret[action.Name()] = action
	}
	return ret
}

func init() {
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		actions []Action,
	) {
		for _, action := range actions {
			action.DefineCmds()
		}
	})
}

// SelectedAction is the action verb selection, read by the binary's
// dispatch. A zero value means no action verb was given.
type SelectedAction struct {
	Action Action
	Target string
}

func (Module) SelectedAction(
	actionsMap Actions,
) SelectedAction {
	if actionNameFlag == "" {
		return SelectedAction{}
	}
	return SelectedAction{
		Action: actionsMap[actionNameFlag],
		Target: actionTargetFlag,
	}
}
