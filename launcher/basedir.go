package launcher

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ResolveBaseDir returns the absolute directory holding the launcher
// executable, whatever the caller's working directory was.
func ResolveBaseDir() (string, error) {
	return baseDirOf(os.Executable)
}

func baseDirOf(executable func() (string, error)) (string, error) {
	ourPath, err := executable()
	if err != nil {
		return "", errors.WithStack(err)
	}

	// a symlinked launcher still runs the application next to the real binary
	if resolved, err := filepath.EvalSymlinks(ourPath); err == nil {
		ourPath = resolved
	}

	ourPath, err = filepath.Abs(ourPath)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Dir(ourPath), nil
}

