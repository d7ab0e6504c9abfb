// Package temppathlib provides scoped temporary files and directories over a
// billy filesystem.
//
// # Overview
//
// Every type in this package is a scope: a guard object that acquires a
// filesystem resource on construction and releases it in Close. Four scopes
// are provided:
//
//   - TemporaryDirectory: allocates a uniquely named directory, deletes the
//     whole tree on Close.
//   - NamedTemporaryFile: allocates a uniquely named file and keeps it open,
//     closes the stream and deletes the file on Close.
//   - RemovingTree: wraps a caller-owned path, deletes it on Close if it
//     still exists.
//   - WorkDir: uses a caller-supplied directory as-is, or allocates a
//     temporary directory when none is supplied and deletes it on Close.
//
// Release is idempotent everywhere: a resource that is already gone is
// treated as success, a second Close is a no-op, and a stream that was
// already closed does not fail the release.
//
// # Usage
//
// Guard style, with the release deferred:
//
//	dir, err := temppathlib.NewTemporaryDirectory()
//	if err != nil {
//	    return err
//	}
//	defer dir.Close()
//
//	path := dir.Join("report.json")
//
// Callback style, with the release guaranteed on every exit path including
// panics:
//
//	err := temppathlib.UsingTemporaryDirectory(func(dir *temppathlib.TemporaryDirectory) error {
//	    return build(dir.Path())
//	})
//
// Accepting an optional output directory from a caller while cleaning up
// ephemeral output when none was given:
//
//	wd, err := temppathlib.NewWorkDir(flagOutputDir)
//	if err != nil {
//	    return err
//	}
//	defer wd.Close()
//
// # Allocation hints
//
// The scopes accept functional options that are forwarded to the allocator:
// WithBaseDir sets the parent directory (default: the system temp
// directory), WithPrefix and WithSuffix shape the generated name, and
// WithKeep disables the deletion on Close for resources that should outlive
// the scope.
//
// # Filesystems
//
// All filesystem access goes through billy.Filesystem. The default is the
// local filesystem; pass WithFilesystem(memfs.New()) to run scopes
// entirely in memory, for example in tests.
//
// # Errors
//
// Failures are platform errors from github.com/jmgilman/go/errors.
// Allocation failures carry CodeTempAllocation, release failures carry
// CodeTempCleanup, and a supplied WorkDir path that does not exist fails
// with errors.CodeNotFound. The IsAllocationFailure, IsMissingPath, and
// IsCleanupFailure predicates match these without importing the codes.
package temppathlib
