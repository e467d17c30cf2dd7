package launcher

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/pkg/errors"
)

// Acknowledger blocks until the operator has confirmed they are done
// reading the console.
type Acknowledger interface {
	Acknowledge() error
}

// ConsoleAcknowledger waits for a single key when In is a terminal and for
// a line otherwise. Running out of input counts as confirmation, so a
// launcher with a closed or redirected stdin never hangs.
type ConsoleAcknowledger struct {
	In io.Reader
}

func (a ConsoleAcknowledger) Acknowledge() error {
	if f, ok := a.In.(*os.File); ok && term.IsTerminal(f.Fd()) {
		return readKey(f)
	}
	return readLine(a.In)
}

func readKey(f *os.File) error {
	state, err := term.MakeRaw(f.Fd())
	if err != nil {
		// cooked mode still works, it just needs Enter
		return readLine(f)
	}
	defer term.Restore(f.Fd(), state)

	var key [1]byte
	if _, err := f.Read(key[:]); err != nil && err != io.EOF {
		return errors.WithStack(err)
	}
	return nil
}

func readLine(r io.Reader) error {
	if r == nil {
		return nil
	}
	_, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return errors.WithStack(err)
	}
	return nil
}
