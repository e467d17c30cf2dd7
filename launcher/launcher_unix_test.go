//go:build unix

package launcher

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Not parallel: the signal goes to the whole test process, and this must be
// the only Launch listening for it.
func TestLaunch_InterruptStopsChildNotLauncher(t *testing.T) {
	// --- Arrange ---
	h := newHarness(t)
	ready := &readySignal{ready: make(chan struct{})}
	h.l.Command = Command{Name: testBinary(t)}
	h.l.Spawner = &ExecSpawner{
		Stdout: ready,
		Stderr: &lockedBuffer{},
		Environ: func() []string {
			return append(os.Environ(), childModeEnv+"=wait-interrupt")
		},
		WaitDelay:   5 * time.Second,
		OnInterrupt: h.l.stopping,
		Logger:      h.l.Logger,
	}
	sent := make(chan error, 1)
	go func() {
		<-ready.ready
		sent <- syscall.Kill(os.Getpid(), syscall.SIGINT)
	}()

	// --- Act ---
	code := h.l.Launch(context.Background())

	// --- Assert ---
	require.NoError(t, <-sent)
	require.Equal(t, ExitOK, code)
	require.Equal(t, 1, h.ack.calls)
	require.Equal(t, normalTrace, h.trace)
	require.True(t, h.l.Exit().Interrupted)
	require.Equal(t, 0, h.l.Exit().Code, "the application handled the interrupt itself")
	require.Contains(t, h.stderr.String(), msgStopping)
}
