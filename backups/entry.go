package backups

// Entry is one immutable snapshot of a file at a point in time. Entries are
// never mutated after creation, only dropped by retention eviction.
type Entry struct {
	ID        string
	FilePath  string // canonical absolute path
	Timestamp string // RFC 3339 with nanoseconds, UTC
	Operation string // name of the command that caused the backup
}
