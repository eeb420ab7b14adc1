package backups

import (
	"github.com/reusee/aide/cmds"
)

var (
	revertRequested bool
	revertPathFlag  string
	listRequested   bool
	listPathFlag    string

	backupIDFlag = cmds.Var[string]("-id")
)

func init() {
	cmds.Define("revert", cmds.Func(func(path *string) {
		revertRequested = true
		revertPathFlag = *path
	}).Desc("restore the most recent backup of a file, or of anything with no path; -id selects an explicit backup"))

	cmds.Define("backups", cmds.Func(func(path *string) {
		listRequested = true
		listPathFlag = *path
	}).Desc("list backups of a file, or the global history with no path"))
}

// RevertRequest is the revert verb selection, read by the binary's dispatch.
type RevertRequest struct {
	Requested bool
	Path      string
	ID        string
}

func (Module) RevertRequest() RevertRequest {
	return RevertRequest{
		Requested: revertRequested,
		Path:      revertPathFlag,
		ID:        *backupIDFlag,
	}
}

// ListRequest is the backups verb selection.
type ListRequest struct {
	Requested bool
	Path      string
}

func (Module) ListRequest() ListRequest {
	return ListRequest{
		Requested: listRequested,
		Path:      listPathFlag,
	}
}
