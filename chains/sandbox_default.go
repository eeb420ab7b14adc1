//go:build !linux

package chains

import "github.com/reusee/aide/logs"

// applySandbox is a no-op on non-Linux platforms.
func applySandbox(logger logs.Logger, extraWriteDirs ...string) error {
	logger.Warn("filesystem sandbox is only supported on linux, running unsandboxed")
	return nil
}
