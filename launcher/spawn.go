package launcher

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// DefaultWaitDelay bounds how long an interrupted application may take to
// shut down before it is killed.
const DefaultWaitDelay = 10 * time.Second

// interruptSignals stop the application instead of the launcher while it
// runs. On Windows, closing the console window arrives as SIGTERM.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// Exit is what the launcher observed of an application run.
type Exit struct {
	// Started is false when the process could not be created at all.
	Started bool

	// Code is the process exit code, -1 if it was killed by a signal.
	Code int

	// Interrupted is set when the run was cut short by the launcher's context.
	Interrupted bool

	StartedAt time.Time
	EndedAt   time.Time
}

// Spawner runs the application to completion.
type Spawner interface {
	// Spawn starts cmd inside lc and blocks until the process has been
	// reaped. Cancelling ctx asks the process to stop. A non-nil error means
	// the process could not be started or waited for; a non-zero exit code
	// is not an error.
	Spawn(ctx context.Context, lc LaunchContext, cmd Command) (Exit, error)
}

// ExecSpawner runs the application as a child process sharing the
// launcher's standard streams.
type ExecSpawner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Environ supplies the inherited environment. Defaults to os.Environ.
	Environ func() []string

	// WaitDelay is how long to wait after an interrupt before killing.
	WaitDelay time.Duration

	// OnInterrupt is called once, when ctx is cancelled while the child runs.
	OnInterrupt func()

	Logger *slog.Logger
}

func (s *ExecSpawner) Spawn(ctx context.Context, lc LaunchContext, command Command) (Exit, error) {
	var exit Exit

	environ := s.Environ
	if environ == nil {
		environ = os.Environ
	}

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = lc.Dir
	cmd.Env = lc.Environ(environ())
	cmd.Stdin = s.Stdin
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	cmd.SysProcAttr = sysProcAttr()
	cmd.WaitDelay = s.WaitDelay
	cmd.Cancel = func() error {
		if s.OnInterrupt != nil {
			s.OnInterrupt()
		}
		if err := interruptChild(cmd.Process); err != nil {
			return cmd.Process.Kill()
		}
		return nil
	}

	err := cmd.Start()
	if err != nil {
		return exit, errors.Wrapf(err, "start %s", command)
	}
	exit.Started = true
	exit.StartedAt = time.Now()
	s.logger().Debug("application started", "pid", cmd.Process.Pid, "command", command.String(), "dir", lc.Dir)

	release, err := bindToLauncher(cmd.Process)
	if err != nil {
		s.logger().Warn("application will outlive a killed launcher", "error", err)
	}
	defer release()

	err = cmd.Wait()
	exit.EndedAt = time.Now()
	exit.Interrupted = ctx.Err() != nil
	if cmd.ProcessState != nil {
		exit.Code = cmd.ProcessState.ExitCode()
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil, errors.As(err, &exitErr), exit.Interrupted:
		return exit, nil
	default:
		return exit, errors.Wrapf(err, "wait for %s", command)
	}
}

func (s *ExecSpawner) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
