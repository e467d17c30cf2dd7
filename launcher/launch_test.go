package launcher

import (
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultCommand(t *testing.T) {
	t.Parallel()

	first := DefaultCommand()
	second := DefaultCommand()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("command drifted between calls (-first +second):\n%s", diff)
	}
	require.Equal(t, []string{"-m", "streamlit", "run", "main.py"}, first.Args)
	require.Equal(t, pythonName(runtime.GOOS), first.Name)
}

func TestPythonName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "python", pythonName("windows"))
	require.Equal(t, "python3", pythonName("linux"))
	require.Equal(t, "python3", pythonName("darwin"))
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	cmd := Command{Name: "python3", Args: []string{"-m", "streamlit", "run", "main.py"}}

	require.Equal(t, "python3 -m streamlit run main.py", cmd.String())
}

func TestNewLaunchContext_CopiesEncodingEnv(t *testing.T) {
	t.Parallel()

	lc := NewLaunchContext("/opt/analysis")
	lc.Env["EXTRA"] = "1"

	require.Equal(t, "/opt/analysis", lc.Dir)
	require.NotContains(t, EncodingEnv, "EXTRA")
	require.Equal(t, "utf-8", lc.Env["PYTHONIOENCODING"])
	require.Equal(t, "1", lc.Env["PYTHONUTF8"])
}

func TestLaunchContext_Environ(t *testing.T) {
	t.Parallel()

	lc := NewLaunchContext("/opt/analysis")
	base := []string{
		"PATH=/usr/bin",
		"PYTHONIOENCODING=gbk",
		"=C:=C:\\analysis",
		"HOME=/home/operator",
		"PYTHONUTF8=0",
	}

	got := lc.Environ(base)

	want := []string{
		"PATH=/usr/bin",
		"=C:=C:\\analysis",
		"HOME=/home/operator",
		"PYTHONIOENCODING=utf-8",
		"PYTHONUTF8=1",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("environment mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, base, 5, "base must not be modified")
}

func TestEnvKeyEqual(t *testing.T) {
	t.Parallel()

	require.True(t, envKeyEqual("PYTHONUTF8", "PYTHONUTF8", false))
	require.False(t, envKeyEqual("PYTHONUTF8", "PythonUtf8", false))
	require.True(t, envKeyEqual("PYTHONUTF8", "PythonUtf8", true))
	require.False(t, envKeyEqual("PYTHONUTF8", "PYTHONIOENCODING", true))
}
