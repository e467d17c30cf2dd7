package launcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState_HappyPath(t *testing.T) {
	t.Parallel()

	path := []State{StateInit, StateDirResolved, StateEnvConfigured, StateChildRunning, StateChildExited, StateAwaitingAck, StateDone}
	for i := 1; i < len(path); i++ {
		require.True(t, path[i-1].CanTransitionTo(path[i]), "%s -> %s", path[i-1], path[i])
	}
}

func TestState_FailedOnlyBeforeEnvironment(t *testing.T) {
	t.Parallel()

	for s := StateInit; s <= StateFailed; s++ {
		want := s == StateInit || s == StateDirResolved
		require.Equal(t, want, s.CanTransitionTo(StateFailed), "%s -> FAILED", s)
	}
	require.True(t, StateFailed.CanTransitionTo(StateAwaitingAck))
	require.False(t, StateFailed.CanTransitionTo(StateChildRunning))
}

func TestState_NoSkippingAcknowledgment(t *testing.T) {
	t.Parallel()

	require.False(t, StateChildExited.CanTransitionTo(StateDone))
	require.False(t, StateFailed.CanTransitionTo(StateDone))
	for s := StateInit; s <= StateFailed; s++ {
		require.False(t, StateDone.CanTransitionTo(s), "DONE -> %s", s)
	}
}

func TestState_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "CHILD_RUNNING", StateChildRunning.String())
	require.Equal(t, "FAILED", StateFailed.String())
	require.Equal(t, "State(42)", State(42).String())
}
