//go:build linux

package launcher

import (
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSysProcAttr_ChildDiesWithLauncher(t *testing.T) {
	t.Parallel()

	attr := sysProcAttr()

	require.NotNil(t, attr)
	require.Equal(t, syscall.SIGTERM, attr.Pdeathsig)
}
