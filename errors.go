package temppathlib

import (
	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes reported by this package. A supplied WorkDir path that does
// not exist is reported with the central platformerrors.CodeNotFound
// instead of a package-local code.
const (
	// CodeTempAllocation indicates a temporary file or directory could not
	// be allocated (disk full, permission denied, name space exhausted).
	CodeTempAllocation platformerrors.ErrorCode = "TEMP_ALLOCATION_FAILED"

	// CodeTempCleanup indicates a resource could not be released on scope
	// exit (recursive delete or stream close failed).
	CodeTempCleanup platformerrors.ErrorCode = "TEMP_CLEANUP_FAILED"
)

// wrapAllocError wraps an error with CodeTempAllocation.
// Used when the allocator cannot produce a usable resource.
func wrapAllocError(err error, message string) error {
	if err == nil {
		return nil
	}
	return platformerrors.Wrap(err, CodeTempAllocation, message)
}

// wrapAllocErrorf wraps an error with CodeTempAllocation and a formatted message.
func wrapAllocErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return platformerrors.Wrapf(err, CodeTempAllocation, format, args...)
}

// wrapCleanupError wraps an error with CodeTempCleanup.
// Used when releasing a resource on scope exit fails.
func wrapCleanupError(err error, message string) error {
	if err == nil {
		return nil
	}
	return platformerrors.Wrap(err, CodeTempCleanup, message)
}

// wrapCleanupErrorf wraps an error with CodeTempCleanup and a formatted message.
func wrapCleanupErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return platformerrors.Wrapf(err, CodeTempCleanup, format, args...)
}

// IsAllocationFailure reports whether err was raised while allocating a
// temporary file or directory. Such errors surface at construction time;
// the scope never becomes usable.
func IsAllocationFailure(err error) bool {
	return platformerrors.GetCode(err) == CodeTempAllocation
}

// IsMissingPath reports whether err was raised because a directory supplied
// to NewWorkDir does not exist.
func IsMissingPath(err error) bool {
	return platformerrors.GetCode(err) == platformerrors.CodeNotFound
}

// IsCleanupFailure reports whether err was raised while releasing a
// resource on scope exit.
func IsCleanupFailure(err error) bool {
	return platformerrors.GetCode(err) == CodeTempCleanup
}
