package actions

import (
	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/vars"
)

var outputFlag = cmds.Var[string]("-output")

type OutputPath string

var _ configs.Configurable = OutputPath("")

func (o OutputPath) ConfigExpr() string {
	return "output"
}

func (Module) OutputPath(
	loader configs.Loader,
) OutputPath {
	return vars.FirstNonZero(
		OutputPath(*outputFlag),
		configs.First[OutputPath](loader, "output"),
	)
}

// ExtraInstructions is appended to single-action prompts; the binary forks
// it with stdin content when stdin is not a terminal.
type ExtraInstructions string

func (Module) ExtraInstructions() ExtraInstructions {
	return ""
}
