//go:build !windows

package launcher

import "os"

// interruptChild asks p to stop the way Ctrl+C would.
func interruptChild(p *os.Process) error {
	return p.Signal(os.Interrupt)
}
