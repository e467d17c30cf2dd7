package launcher

import (
	"context"
	"io"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"
)

var version = "master"

// Run is the launcher's main. It takes no arguments of its own; anything
// other than --help or --version is a usage error.
func Run(args []string) int {
	if code, exit := parseArgs(args, os.Stderr); exit {
		return code
	}

	logger := newLogger(os.Getenv(LogLevelEnv), os.Stderr)
	return New(logger).Launch(context.Background())
}

// parseArgs reports whether the launcher should stop before launching, and
// with which status.
func parseArgs(args []string, w io.Writer) (code int, exit bool) {
	app := kingpin.New("analysisrun", "Starts the load data analysis application from its install directory.")
	app.Version(version)
	app.VersionFlag.Short('V')
	app.HelpFlag.Short('h')
	app.Writer(w)
	app.Terminate(func(status int) {
		code, exit = status, true
	})

	_, err := app.Parse(args)
	if exit {
		return code, exit
	}
	if err != nil {
		app.Errorf("%s, try --help", err)
		return ExitUsage, true
	}
	return ExitOK, false
}
