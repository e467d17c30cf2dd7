//go:build linux

package launcher

import (
	"os"
	"syscall"
)

// The kernel sends SIGTERM to the application if the launcher dies first.
// Pdeathsig follows the spawning thread, which outlives the child here since
// nothing in the launcher locks or retires OS threads.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGTERM,
	}
}

func bindToLauncher(*os.Process) (func(), error) {
	return noop, nil
}
