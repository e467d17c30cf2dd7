package launcher

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Process exit statuses of the launcher itself. A failing application does
// not change the launcher's status.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 2
)

var (
	ErrResolveBaseDir = errors.New("cannot determine launcher directory")
	ErrChangeDir      = errors.New("cannot enter launcher directory")
)

// FatalError is a launcher-level failure that prevents the application from
// being started. Kind is one of the Err* sentinels above.
type FatalError struct {
	Kind error
	Err  error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *FatalError) Cause() error  { return e.Err }
func (e *FatalError) Unwrap() error { return e.Err }

func (e *FatalError) Is(target error) bool {
	return target == e.Kind
}

func (e *FatalError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "%v: %+v", e.Kind, e.Err)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
