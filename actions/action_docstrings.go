package actions

import (
	"context"
	"fmt"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionDocstrings struct {
	Render    dscope.Inject[sources.RenderTarget]
	Complete  dscope.Inject[Complete]
	WriteFile dscope.Inject[WriteFile]
	Extra     dscope.Inject[ExtraInstructions]
}

var _ Action = ActionDocstrings{}

func (Module) ActionDocstrings(
	inject dscope.InjectStruct,
) (ret ActionDocstrings) {
	inject(&ret)
	return
}

func (a ActionDocstrings) Name() string {
	return "docstrings"
}

func (a ActionDocstrings) RequiresDirectory() bool {
	return false
}

func (a ActionDocstrings) Mutates() bool {
	return true
}

func (a ActionDocstrings) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("add documentation comments in place"))
}

func (a ActionDocstrings) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, failed := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Docstrings, listing, string(a.Extra())),
	)
	if failed {
		fmt.Println(response)
		return nil
	}

	code := prompts.ExtractCode(response)
	if code == "" {
		fmt.Println(response)
		return nil
	}

	// always in place
	return a.WriteFile()(target, code, a.Name())
}
