package actions

import (
	"context"
	"fmt"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionExplain struct {
	Render   dscope.Inject[sources.RenderTarget]
	Complete dscope.Inject[Complete]
	Extra    dscope.Inject[ExtraInstructions]
}

var _ Action = ActionExplain{}

func (Module) ActionExplain(
	inject dscope.InjectStruct,
) (ret ActionExplain) {
	inject(&ret)
	return
}

func (a ActionExplain) Name() string {
	return "explain"
}

func (a ActionExplain) RequiresDirectory() bool {
	return false
}

func (a ActionExplain) Mutates() bool {
	return false
}

func (a ActionExplain) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("explain what the code does"))
}

func (a ActionExplain) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, _ := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Explain, listing, string(a.Extra())),
	)
	fmt.Println(response)
	return nil
}
