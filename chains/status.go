package chains

type Status int

const (
	StatusPending Status = iota
	StatusValidating
	StatusSkipped
	StatusRunning
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusValidating:
		return "validating"
	case StatusSkipped:
		return "skipped"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}
