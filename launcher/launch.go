// Package launcher starts the load data analysis application from the
// directory it is installed in, with a UTF-8 console, and keeps the console
// open until the operator has read whatever the application printed.
package launcher

import (
	"runtime"
	"sort"
	"strings"
)

// EntryFile is the application script, relative to the base directory.
const EntryFile = "main.py"

// Command is the application invocation. It never depends on the launcher's
// own arguments.
type Command struct {
	// Name is the interpreter, looked up on PATH unless it contains a
	// path separator.
	Name string

	// Args are passed to the interpreter.
	Args []string
}

// DefaultCommand returns the streamlit invocation of EntryFile.
func DefaultCommand() Command {
	return Command{
		Name: pythonName(runtime.GOOS),
		Args: []string{"-m", "streamlit", "run", EntryFile},
	}
}

func pythonName(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// EncodingEnv holds the variables that put the application's text I/O in
// UTF-8, matching the console code page.
var EncodingEnv = map[string]string{
	"PYTHONIOENCODING": "utf-8",
	"PYTHONUTF8":       "1",
}

// LaunchContext is everything the application inherits from the launcher.
// It is built once the base directory is known and not modified afterwards.
type LaunchContext struct {
	// Dir is the absolute base directory, used as the application's working
	// directory.
	Dir string

	// Env overrides entries of the inherited environment.
	Env map[string]string
}

func NewLaunchContext(dir string) LaunchContext {
	env := make(map[string]string, len(EncodingEnv))
	for k, v := range EncodingEnv {
		env[k] = v
	}
	return LaunchContext{Dir: dir, Env: env}
}

// Environ returns base with every overridden variable removed, followed by
// the overrides in key order.
func (lc LaunchContext) Environ(base []string) []string {
	fold := runtime.GOOS == "windows"
	res := make([]string, 0, len(base)+len(lc.Env))
	for _, kv := range base {
		key, _, _ := strings.Cut(kv, "=")
		if lc.overrides(key, fold) {
			continue
		}
		res = append(res, kv)
	}
	for _, k := range sortedKeys(lc.Env) {
		res = append(res, k+"="+lc.Env[k])
	}
	return res
}

func (lc LaunchContext) overrides(key string, fold bool) bool {
	// Windows keeps per-drive directories in variables named "=C:" and such.
	if key == "" {
		return false
	}
	for k := range lc.Env {
		if envKeyEqual(k, key, fold) {
			return true
		}
	}
	return false
}

func envKeyEqual(a, b string, fold bool) bool {
	if fold {
		return strings.EqualFold(a, b)
	}
	return a == b
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
