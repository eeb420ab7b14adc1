package backups

import (
	"os"
	"path/filepath"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/vars"
)

var backupRootFlag = cmds.Var[string]("-backup-root")

type BackupRoot string

var _ configs.Configurable = BackupRoot("")

func (b BackupRoot) ConfigExpr() string {
	return "backup_root"
}

func (Module) BackupRoot(
	loader configs.Loader,
) BackupRoot {
	if root := vars.FirstNonZero(
		BackupRoot(*backupRootFlag),
		configs.First[BackupRoot](loader, "backup_root"),
	); root != "" {
		return root
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// no config dir, keep backups next to the working directory
		return ".aide-backups"
	}
	return BackupRoot(filepath.Join(configDir, "aide", "backups"))
}
