package temppathlib

import (
	"errors"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
)

func TestWrapHelpers_NilPassthrough(t *testing.T) {
	require.NoError(t, wrapAllocError(nil, "context"))
	require.NoError(t, wrapAllocErrorf(nil, "context %d", 1))
	require.NoError(t, wrapCleanupError(nil, "context"))
	require.NoError(t, wrapCleanupErrorf(nil, "context %d", 1))
}

func TestWrapHelpers_PreserveCause(t *testing.T) {
	cause := errors.New("disk full")

	err := wrapAllocError(cause, "failed to allocate")
	require.ErrorIs(t, err, cause)
	require.Equal(t, CodeTempAllocation, platformerrors.GetCode(err))

	err = wrapCleanupErrorf(cause, "failed to remove %s", "x")
	require.ErrorIs(t, err, cause)
	require.Equal(t, CodeTempCleanup, platformerrors.GetCode(err))
}

func TestErrorPredicates(t *testing.T) {
	cause := errors.New("boom")

	require.True(t, IsAllocationFailure(wrapAllocError(cause, "alloc")))
	require.False(t, IsAllocationFailure(cause))
	require.False(t, IsAllocationFailure(nil))

	require.True(t, IsCleanupFailure(wrapCleanupError(cause, "cleanup")))
	require.False(t, IsCleanupFailure(wrapAllocError(cause, "alloc")))

	require.True(t, IsMissingPath(platformerrors.New(platformerrors.CodeNotFound, "missing")))
	require.False(t, IsMissingPath(cause))
}

func TestErrorCodesAreStable(t *testing.T) {
	require.Equal(t, platformerrors.ErrorCode("TEMP_ALLOCATION_FAILED"), CodeTempAllocation)
	require.Equal(t, platformerrors.ErrorCode("TEMP_CLEANUP_FAILED"), CodeTempCleanup)
}
