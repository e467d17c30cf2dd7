//go:build windows

package launcher

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleCP       = kernel32.NewProc("GetConsoleCP")
	procGetConsoleOutputCP = kernel32.NewProc("GetConsoleOutputCP")
	procSetConsoleCP       = kernel32.NewProc("SetConsoleCP")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
)

type systemConsole struct{}

// SystemConsole returns the console the launcher is attached to.
func SystemConsole() Console {
	return systemConsole{}
}

func (systemConsole) SetCodePage(cp uint32) (func(), error) {
	// zero means no console is attached
	prevIn, _, _ := procGetConsoleCP.Call()
	prevOut, _, _ := procGetConsoleOutputCP.Call()
	if prevOut == 0 {
		return noop, errors.New("no console attached")
	}

	if r, _, err := procSetConsoleOutputCP.Call(uintptr(cp)); r == 0 {
		return noop, errors.Wrapf(err, "set console output code page %d", cp)
	}
	if r, _, err := procSetConsoleCP.Call(uintptr(cp)); r == 0 {
		procSetConsoleOutputCP.Call(prevOut)
		return noop, errors.Wrapf(err, "set console input code page %d", cp)
	}

	return func() {
		procSetConsoleOutputCP.Call(prevOut)
		if prevIn != 0 {
			procSetConsoleCP.Call(prevIn)
		}
	}, nil
}
