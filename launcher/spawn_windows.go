//go:build windows

package launcher

import (
	"os"
	"syscall"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// interruptChild does nothing: the application shares the console, so Ctrl+C
// or a closing window has already reached it, and os.Interrupt cannot be sent
// to another process. The Cmd's WaitDelay kills it if it does not stop.
func interruptChild(*os.Process) error {
	return nil
}

// bindToLauncher puts p in a job object that kills its members once the last
// handle to it is closed, which happens at the latest when the launcher
// process goes away.
func bindToLauncher(p *os.Process) (func(), error) {
	job, err := windows.CreateJobObject(nil, nil)
	if err != nil {
		return noop, errors.Wrap(err, "create job object")
	}

	info := windows.JOBOBJECT_EXTENDED_LIMIT_INFORMATION{
		BasicLimitInformation: windows.JOBOBJECT_BASIC_LIMIT_INFORMATION{
			LimitFlags: windows.JOB_OBJECT_LIMIT_KILL_ON_JOB_CLOSE,
		},
	}
	_, err = windows.SetInformationJobObject(
		job,
		windows.JobObjectExtendedLimitInformation,
		uintptr(unsafe.Pointer(&info)),
		uint32(unsafe.Sizeof(info)),
	)
	if err != nil {
		windows.CloseHandle(job)
		return noop, errors.Wrap(err, "configure job object")
	}

	proc, err := windows.OpenProcess(windows.PROCESS_SET_QUOTA|windows.PROCESS_TERMINATE, false, uint32(p.Pid))
	if err != nil {
		windows.CloseHandle(job)
		return noop, errors.Wrap(err, "open application process")
	}
	defer windows.CloseHandle(proc)

	if err := windows.AssignProcessToJobObject(job, proc); err != nil {
		windows.CloseHandle(job)
		return noop, errors.Wrap(err, "assign application to job object")
	}

	return func() {
		windows.CloseHandle(job)
	}, nil
}
