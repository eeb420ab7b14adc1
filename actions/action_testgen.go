package actions

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/prompts"
	"github.com/reusee/aide/sources"
	"github.com/reusee/dscope"
)

type ActionTest struct {
	Render     dscope.Inject[sources.RenderTarget]
	Complete   dscope.Inject[Complete]
	WriteFile  dscope.Inject[WriteFile]
	OutputPath dscope.Inject[OutputPath]
	Extra      dscope.Inject[ExtraInstructions]
}

var _ Action = ActionTest{}

func (Module) ActionTest(
	inject dscope.InjectStruct,
) (ret ActionTest) {
	inject(&ret)
	return
}

func (a ActionTest) Name() string {
	return "test"
}

func (a ActionTest) RequiresDirectory() bool {
	return false
}

func (a ActionTest) Mutates() bool {
	return true
}

func (a ActionTest) DefineCmds() {
	cmds.Define(a.Name(), cmds.Func(func(target string) {
		actionNameFlag = a.Name()
		actionTargetFlag = target
	}).Desc("generate a test file next to the source"))
}

// TestFilePath derives the generated test file path: source stem plus
// "_test" plus the source extension.
func TestFilePath(target string) string {
	ext := filepath.Ext(target)
	return strings.TrimSuffix(target, ext) + "_test" + ext
}

func (a ActionTest) Run(ctx context.Context, target string) error {
	listing, err := a.Render()(target)
	if err != nil {
		return err
	}

	response, failed := a.Complete()(ctx, a.Name(),
		prompts.BuildTask(prompts.Test, listing, string(a.Extra())),
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

	outputPath := string(a.OutputPath())
	if outputPath == "" {
		outputPath = TestFilePath(target)
	}
	return a.WriteFile()(outputPath, code, a.Name())
}
