package actions

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionDocument struct {
	Render     dscope.Inject[sources.RenderTarget]
	Complete   dscope.Inject[Complete]
	WriteFile  dscope.Inject[WriteFile]
	OutputPath dscope.Inject[OutputPath]
	Extra      dscope.Inject[ExtraInstructions]
}

var _ Action = ActionDocument{}

func (Module) ActionDocument(
	inject dscope.InjectStruct,
) (ret ActionDocument) {
	inject(&ret)
	return
}

func (a ActionDocument) Name() string {
	return "document"
}

func (a ActionDocument) RequiresDirectory() bool {
	return true
}

func (a ActionDocument) Mutates() bool {
	return true
}

func (a ActionDocument) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("generate developer documentation for a directory"))
}

func (a ActionDocument) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, failed := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Document, listing, string(a.Extra())),
	)
	if failed {
		fmt.Println(response)
		return nil
	}

	outputPath := string(a.OutputPath())
	if outputPath == "" {
		outputPath = filepath.Join(target, "DOCUMENTATION.md")
	}
	return a.WriteFile()(outputPath, response, a.Name())
}
