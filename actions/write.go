package actions

import (
	"errors"
	"os"
	"strings"

	"github.com/reusee/aide/backups"
	"github.com/reusee/aide/configs"
)

type BackupOnWrite bool

var _ configs.Configurable = BackupOnWrite(false)

func (b BackupOnWrite) ConfigExpr() string {
	return "backup_on_write"
}

func (Module) BackupOnWrite(
	loader configs.Loader,
) BackupOnWrite {
	ret := BackupOnWrite(true)
	err := loader.AssignFirst("backup_on_write", &ret)
	if err != nil && !errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}
	return ret
}

// WriteFile routes a response to disk. Overwrites of existing files go
// through the backup store first when the backup-on-write policy is on.
// Written files end with exactly one trailing newline.
type WriteFile func(path string, content string, operation string) error

func (Module) WriteFile(
	backupOnWrite BackupOnWrite,
	createBackup backups.CreateBackup,
) WriteFile {
	return func(path string, content string, operation string) error {
		if _, err := os.Stat(path); err == nil && bool(backupOnWrite) {
			createBackup(path, operation)
		}
		content = strings.TrimRight(content, "\n") + "\n"
		return os.WriteFile(path, []byte(content), 0644)
	}
}
