package temppathlib

import (
	"errors"
	"os"

	platformerrors "github.com/jmgilman/go/errors"
)

// WorkDir is either a directory supplied by the caller or a temporary
// directory allocated on the caller's behalf. Exactly one of the two fields
// is set: a borrowed directory is never deleted, an owned temporary
// directory is deleted on Close. Ownership is fixed at construction.
//
// The recurring pattern is a batch operation that accepts an optional
// "keep my output here" directory: debug artifacts persist only when such a
// directory was explicitly requested.
type WorkDir struct {
	borrowed string
	owned    *TemporaryDirectory
}

// NewWorkDir returns a scope around path, or around a fresh temporary
// directory if path is empty.
//
// A non-empty path must name an existing directory: a missing path fails
// with platformerrors.CodeNotFound before anything is created, and a path
// that exists but is not a directory fails with CodeInvalidInput. The
// allocation hints only apply when path is empty.
func NewWorkDir(path string, opts ...Option) (*WorkDir, error) {
	if path == "" {
		owned, err := NewTemporaryDirectory(opts...)
		if err != nil {
			return nil, err
		}
		return &WorkDir{owned: owned}, nil
	}

	o := newOptions(opts)
	info, err := o.fs.Stat(path)
	if os.IsNotExist(err) {
		return nil, platformerrors.Newf(platformerrors.CodeNotFound, "directory does not exist: %s", path)
	}
	if err != nil {
		return nil, wrapAllocErrorf(err, "failed to stat %s", path)
	}
	if !info.IsDir() {
		return nil, platformerrors.Newf(platformerrors.CodeInvalidInput, "not a directory: %s", path)
	}
	return &WorkDir{borrowed: path}, nil
}

// Path returns the directory the scope resolved to.
func (w *WorkDir) Path() string {
	if w.owned != nil {
		return w.owned.Path()
	}
	return w.borrowed
}

// Temporary reports whether the directory was allocated by this scope and
// will be deleted on Close.
func (w *WorkDir) Temporary() bool {
	return w.owned != nil
}

// Close deletes the directory if this scope allocated it; a borrowed
// directory is left untouched. Close is idempotent.
func (w *WorkDir) Close() error {
	if w.owned != nil {
		return w.owned.Close()
	}
	return nil
}

// UsingWorkDir resolves a work directory around path (see NewWorkDir), runs
// fn with it, and releases it when fn returns. The release runs on every
// exit path, including a panic in fn. A cleanup failure is joined onto fn's
// error rather than replacing it.
func UsingWorkDir(path string, fn func(wd *WorkDir) error, opts ...Option) (err error) {
	wd, err := NewWorkDir(path, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wd.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(wd)
}
