//go:build !linux && !windows

package launcher

import (
	"os"
	"syscall"
)

// There is no Pdeathsig outside Linux. A launcher that is stopped by a
// signal still interrupts the application through its context, but a
// SIGKILLed launcher leaves it running.
func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

func bindToLauncher(*os.Process) (func(), error) {
	return noop, nil
}
