package actions

import (
	"context"
	"fmt"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionSecurity struct {
	Render   dscope.Inject[sources.RenderTarget]
	Complete dscope.Inject[Complete]
	Extra    dscope.Inject[ExtraInstructions]
}

var _ Action = ActionSecurity{}

func (Module) ActionSecurity(
	inject dscope.InjectStruct,
) (ret ActionSecurity) {
	inject(&ret)
	return
}

func (a ActionSecurity) Name() string {
	return "security"
}

func (a ActionSecurity) RequiresDirectory() bool {
	return false
}

func (a ActionSecurity) Mutates() bool {
	return false
}

func (a ActionSecurity) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("review the code for security problems"))
}

func (a ActionSecurity) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, _ := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Security, listing, string(a.Extra())),
	)
	fmt.Println(response)
	return nil
}
