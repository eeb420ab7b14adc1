package chains

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/aide/actions"
	"github.com/reusee/aide/backups"
	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/debugs"
	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/procs"
)

var tapChain = cmds.Switch("-tap-chain")

type Options struct {
	ContinueOnError bool
	Safe            bool
}

type runState struct {
	ctx     context.Context
	target  string
	isDir   bool
	actions actions.Actions
	opts    Options
	result  *Result
}

var errChainAborted = errors.New("chain aborted")

// stepProc runs one step of the chain. Returning errChainAborted stops the
// sequence; a nil error moves the sequence to the next step, whatever the
// step's own status.
type stepProc struct {
	index int
}

var _ procs.Proc[*runState] = stepProc{}

func (s stepProc) Run(state *runState) (procs.Proc[*runState], error) {
	step := &state.result.Steps[s.index]

	step.Status = StatusValidating
	var invalid error
	action, ok := state.actions[step.Name]
	if !ok {
		invalid = fmt.Errorf("unknown command: %s", step.Name)
	} else if action.RequiresDirectory() && !state.isDir {
		invalid = fmt.Errorf("%s requires a directory", step.Name)
	} else if !action.RequiresDirectory() && state.isDir {
		invalid = fmt.Errorf("%s requires a file", step.Name)
	}
	if invalid != nil {
		step.Err = invalid
		if state.opts.ContinueOnError {
			step.Status = StatusSkipped
			return nil, nil
		}
		step.Status = StatusFailed
		state.result.Aborted = step
		return nil, errChainAborted
	}

	step.Status = StatusRunning
	if err := action.Run(state.ctx, state.target); err != nil {
		step.Err = err
		step.Status = StatusFailed
		if state.opts.ContinueOnError {
			return nil, nil
		}
		state.result.Aborted = step
		return nil, errChainAborted
	}
	step.Status = StatusSucceeded
	return nil, nil
}

// Run executes the parsed steps against the target, strictly in order. It
// never exits the process: step failures end up in the Result, and the
// returned error is only for fatal input problems found before any step
// runs.
type Run func(ctx context.Context, target string, steps []string, opts Options) (*Result, error)

func (Module) Run(
	actionsMap actions.Actions,
	backupRoot backups.BackupRoot,
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, target string, steps []string, opts Options) (*Result, error) {
		ctx, _ = newSpan(ctx, "")

		stat, err := os.Stat(target)
		if err != nil {
			return nil, err
		}

		if opts.Safe {
			// the backup root may live outside the working directory; it
			// must exist before the sandbox can allow writes beneath it
			if err := os.MkdirAll(string(backupRoot), 0755); err != nil {
				return nil, err
			}
			if err := applySandbox(logger, string(backupRoot)); err != nil {
				return nil, logs.WrapSpan(ctx, fmt.Errorf("failed to apply sandbox: %w", err))
			}
		}

		result := &Result{
			Steps: make([]StepResult, len(steps)),
		}
		for i, name := range steps {
			result.Steps[i] = StepResult{
				Name:   name,
				Status: StatusPending,
			}
		}

		state := &runState{
			ctx:     ctx,
			target:  target,
			isDir:   stat.IsDir(),
			actions: actionsMap,
			opts:    opts,
			result:  result,
		}

		seq := make(procs.Procs[*runState], len(steps))
		for i := range seq {
			seq[i] = stepProc{index: i}
		}

		var proc procs.Proc[*runState] = seq
		for proc != nil {
			next, err := proc.Run(state)
			if err != nil {
				if errors.Is(err, errChainAborted) {
					break
				}
				return nil, err
			}
			proc = next
		}

		if result.Aborted != nil {
			logger.WarnContext(ctx, "chain aborted",
				"step", result.Aborted.Name,
				"error", result.Aborted.Err,
			)
			if *tapChain {
				tap(ctx, "chain aborted", map[string]any{
					"step":   result.Aborted,
					"result": result,
				})
			}
		}
		result.Completed = result.Aborted == nil

		return result, nil
	}
}
