//go:build linux

package chains

import (
	"fmt"
	"unsafe"

	"github.com/reusee/aide/logs"
	"golang.org/x/sys/unix"
)

// applySandbox uses Linux Landlock to restrict the process to write access
// in the current directory and the given extra directories. Read access
// stays unrestricted across the filesystem.
func applySandbox(logger logs.Logger, extraWriteDirs ...string) error {
	abi, _, errNo := unix.Syscall(
		unix.SYS_LANDLOCK_CREATE_RULESET,
		0, 0, unix.LANDLOCK_CREATE_RULESET_VERSION,
	)
	if errNo != 0 {
		// older kernels, or landlock disabled: run unsandboxed with a warning
		if errNo == unix.ENOSYS || errNo == unix.EOPNOTSUPP || errNo == unix.ENOPKG || errNo == unix.EINVAL {
			logger.Warn("landlock not supported or disabled by kernel, running without filesystem sandbox", "error", errNo)
			return nil
		}
		return fmt.Errorf("landlock_create_ruleset(version): %w", errNo)
	}
	if abi < 1 {
		logger.Warn("landlock ABI version is 0, running without filesystem sandbox")
		return nil
	}

	readRights := uint64(unix.LANDLOCK_ACCESS_FS_READ_FILE |
		unix.LANDLOCK_ACCESS_FS_READ_DIR)

	writeRights := uint64(unix.LANDLOCK_ACCESS_FS_WRITE_FILE |
		unix.LANDLOCK_ACCESS_FS_REMOVE_DIR |
		unix.LANDLOCK_ACCESS_FS_REMOVE_FILE |
		unix.LANDLOCK_ACCESS_FS_MAKE_CHAR |
		unix.LANDLOCK_ACCESS_FS_MAKE_DIR |
		unix.LANDLOCK_ACCESS_FS_MAKE_REG |
		unix.LANDLOCK_ACCESS_FS_MAKE_SOCK |
		unix.LANDLOCK_ACCESS_FS_MAKE_FIFO |
		unix.LANDLOCK_ACCESS_FS_MAKE_BLOCK |
		unix.LANDLOCK_ACCESS_FS_MAKE_SYM)

	// rights added in later ABIs
	if abi >= 2 {
		writeRights |= unix.LANDLOCK_ACCESS_FS_REFER
	}
	if abi >= 3 {
		writeRights |= unix.LANDLOCK_ACCESS_FS_TRUNCATE
	}

	rulesetAttr := unix.LandlockRulesetAttr{
		Access_fs: readRights | writeRights,
	}
	ruleset, _, errNo := unix.Syscall(
		unix.SYS_LANDLOCK_CREATE_RULESET,
		uintptr(unsafe.Pointer(&rulesetAttr)),
		unsafe.Sizeof(rulesetAttr),
		0,
	)
	if errNo != 0 {
		return fmt.Errorf("landlock_create_ruleset: %w", errNo)
	}
	defer unix.Close(int(ruleset))

	addRule := func(path string, access uint64) error {
		fd, err := unix.Open(path, unix.O_PATH|unix.O_DIRECTORY|unix.O_CLOEXEC, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer unix.Close(fd)
		pathBeneath := unix.LandlockPathBeneathAttr{
			Parent_fd:      int32(fd),
			Allowed_access: access,
		}
		if _, _, errNo := unix.Syscall(
			unix.SYS_LANDLOCK_ADD_RULE,
			ruleset,
			unix.LANDLOCK_RULE_PATH_BENEATH,
			uintptr(unsafe.Pointer(&pathBeneath)),
		); errNo != 0 {
			return fmt.Errorf("add rule for %s: %w", path, errNo)
		}
		return nil
	}

	// reads everywhere
	if err := addRule("/", readRights); err != nil {
		return err
	}
	// writes in the working directory and the extra directories
	writeDirs := append([]string{"."}, extraWriteDirs...)
	for _, dir := range writeDirs {
		if err := addRule(dir, readRights|writeRights); err != nil {
			return err
		}
	}

	if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
		return fmt.Errorf("prctl no_new_privs: %w", err)
	}
	if _, _, errNo := unix.Syscall(
		unix.SYS_LANDLOCK_RESTRICT_SELF,
		ruleset,
		0, 0,
	); errNo != 0 {
		return fmt.Errorf("landlock_restrict_self: %w", errNo)
	}

	logger.Info("chain sandbox applied", "abi", abi, "write_dirs", writeDirs)
	return nil
}
