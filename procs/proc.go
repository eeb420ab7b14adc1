package procs

// Proc is one resumable unit of work. Run does a bounded amount of work
// and returns the continuation, nil when there is nothing left.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}
