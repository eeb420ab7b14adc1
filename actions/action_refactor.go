package actions

import (
	"context"
	"fmt"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionRefactor struct {
	Render     dscope.Inject[sources.RenderTarget]
	Complete   dscope.Inject[Complete]
	WriteFile  dscope.Inject[WriteFile]
	OutputPath dscope.Inject[OutputPath]
	Extra      dscope.Inject[ExtraInstructions]
}

var _ Action = ActionRefactor{}

func (Module) ActionRefactor(
	inject dscope.InjectStruct,
) (ret ActionRefactor) {
	inject(&ret)
	return
}

func (a ActionRefactor) Name() string {
	return "refactor"
}

func (a ActionRefactor) RequiresDirectory() bool {
	return false
}

func (a ActionRefactor) Mutates() bool {
	return true
}

func (a ActionRefactor) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("rewrite the file with improvements, in place"))
}

func (a ActionRefactor) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, failed := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Refactor, listing, string(a.Extra())),
	)
	if failed {
		fmt.Println(response)
		return nil
	}

	code := prompts.ExtractCode(response)
	if code == "" {
		// no code block, show the response instead of clobbering the file
		fmt.Println(response)
		return nil
	}

	outputPath := string(a.OutputPath())
	if outputPath == "" {
		outputPath = target
	}
	return a.WriteFile()(outputPath, code, a.Name())
}
