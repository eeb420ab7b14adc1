package chains

import (
	"github.com/reusee/aide/cmds"
)

var (
	chainRequested  bool
	chainTargetFlag string
	chainStepsFlag  string

	continueOnErrorFlag = cmds.Switch("-continue-on-error")
	safeFlag            = cmds.Switch("-safe")
)

func init() {
	cmds.Define("chain", cmds.Func(func(target string, steps string) {
		chainRequested = true
		chainTargetFlag = target
		chainStepsFlag = steps
	}).Desc("run comma-separated commands against the target in order"))
}

// Request is the chain invocation from the command line. Requested false
// means the chain verb was not given.
type Request struct {
	Requested bool
	Target    string
	Steps     []string
	Options   Options
}

func (Module) Request() Request {
	return Request{
		Requested: chainRequested,
		Target:    chainTargetFlag,
		Steps:     ParseSteps(chainStepsFlag),
		Options: Options{
			ContinueOnError: *continueOnErrorFlag,
			Safe:            *safeFlag,
		},
	}
}
