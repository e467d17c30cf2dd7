package launcher

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
)

// Launcher runs the launch sequence once. Every collaborator is a field so
// the sequence can run without touching the real console, working
// directory or process table.
type Launcher struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Theme  *Theme

	Command        Command
	ResolveBaseDir func() (string, error)
	Chdir          func(dir string) error
	Console        Console
	Spawner        Spawner
	Acknowledger   Acknowledger

	// OnTransition is called after every state change.
	OnTransition func(from, to State)

	state State
	exit  Exit
}

// New returns a Launcher wired to the process's own console.
func New(logger *slog.Logger) *Launcher {
	l := &Launcher{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Logger:         logger,
		Theme:          NewTheme(os.Stdout, os.Stderr),
		Command:        DefaultCommand(),
		ResolveBaseDir: ResolveBaseDir,
		Chdir:          os.Chdir,
		Console:        SystemConsole(),
		Acknowledger:   ConsoleAcknowledger{In: os.Stdin},
	}
	l.Spawner = &ExecSpawner{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		WaitDelay:   DefaultWaitDelay,
		OnInterrupt: l.stopping,
		Logger:      logger,
	}
	return l
}

// State returns the step the sequence is at.
func (l *Launcher) State() State {
	return l.state
}

// Exit returns what was observed of the application, if it ran.
func (l *Launcher) Exit() Exit {
	return l.exit
}

// Launch prepares the environment, runs the application, waits for the
// operator and returns the launcher's exit status.
func (l *Launcher) Launch(ctx context.Context) int {
	l.state = StateInit

	// before anything is printed, so every message uses the same code page
	restore, err := l.Console.SetCodePage(CodePageUTF8)
	if err != nil {
		l.Logger.Warn("console code page unchanged", "codepage", CodePageUTF8, "error", err)
	}
	defer restore()

	code := ExitOK
	lc, err := l.prepare()
	if err != nil {
		l.transition(StateFailed)
		l.Logger.Debug("launch aborted", "error", fmt.Sprintf("%+v", err))
		fmt.Fprintln(l.Stderr, l.Theme.Error.Render(msgFatal+err.Error()))
		code = ExitFatal
	} else {
		l.run(ctx, lc)
	}

	l.transition(StateAwaitingAck)
	fmt.Fprint(l.Stdout, l.Theme.Prompt.Render(msgPressEnter))
	if err := l.Acknowledger.Acknowledge(); err != nil {
		l.Logger.Warn("reading acknowledgment failed", "error", err)
	}
	fmt.Fprintln(l.Stdout)
	l.transition(StateDone)

	return code
}

func (l *Launcher) prepare() (LaunchContext, error) {
	dir, err := l.ResolveBaseDir()
	if err != nil {
		return LaunchContext{}, &FatalError{Kind: ErrResolveBaseDir, Err: err}
	}
	l.transition(StateDirResolved)
	l.Logger.Debug("base directory resolved", "dir", dir)

	if err := l.Chdir(dir); err != nil {
		return LaunchContext{}, &FatalError{Kind: ErrChangeDir, Err: err}
	}

	lc := NewLaunchContext(dir)
	l.transition(StateEnvConfigured)
	return lc, nil
}

func (l *Launcher) run(ctx context.Context, lc LaunchContext) {
	fmt.Fprintln(l.Stdout, l.Theme.Status.Render(msgStarting))
	fmt.Fprintln(l.Stdout, l.Theme.Prompt.Render(msgStopHint))

	// the application gets the interrupt; the launcher only waits it out
	sigCtx, stop := signal.NotifyContext(ctx, interruptSignals...)
	defer stop()

	l.transition(StateChildRunning)
	exit, err := l.Spawner.Spawn(sigCtx, lc, l.Command)
	stop()
	l.exit = exit
	l.transition(StateChildExited)

	if err != nil {
		fmt.Fprintln(l.Stderr, l.Theme.Error.Render(msgSpawnFailed+err.Error()))
		l.Logger.Debug("application did not run", "error", fmt.Sprintf("%+v", err))
		return
	}
	l.Logger.Debug("application exited",
		"code", exit.Code,
		"interrupted", exit.Interrupted,
		"ran", strings.TrimSpace(humanize.RelTime(exit.StartedAt, exit.EndedAt, "", "")),
	)
}

func (l *Launcher) stopping() {
	fmt.Fprintln(l.Stderr, l.Theme.Notice.Render(msgStopping))
}

func (l *Launcher) transition(to State) {
	from := l.state
	if !from.CanTransitionTo(to) {
		panic(fmt.Sprintf("launcher: illegal transition %s -> %s", from, to))
	}
	l.state = to
	if l.OnTransition != nil {
		l.OnTransition(from, to)
	}
}
