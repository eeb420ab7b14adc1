package chains

type StepResult struct {
	Name   string
	Status Status
	Err    error
}

// Result reports one chain invocation. Completed means every step reached a
// terminal state without aborting the chain; failed steps under
// -continue-on-error still complete the chain.
type Result struct {
	Completed bool
	Steps     []StepResult
	Aborted   *StepResult
}
