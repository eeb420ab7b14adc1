package backups

import (
	"github.com/reusee/aide/logs"
)

// CreateBackup is the best-effort wrapper around Store.Create: a backup
// failure is logged and reported as "", never an error, so it cannot block
// the mutating operation it insures.
type CreateBackup func(filePath string, operation string) (backupID string)

func (Module) CreateBackup(
	store *Store,
	logger logs.Logger,
) CreateBackup {
	return func(filePath string, operation string) string {
		id, err := store.Create(filePath, operation)
		if err != nil {
			logger.Warn("backup failed",
				"file", filePath,
				"operation", operation,
				"error", err,
			)
			return ""
		}
		logger.Info("backup created",
			"file", filePath,
			"operation", operation,
			"id", id,
		)
		return id
	}
}
