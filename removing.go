package temppathlib

import (
	"errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// RemovingTree guarantees that a caller-owned path is removed when the
// scope closes. Construction only records the path; nothing is created or
// validated. On Close the path is deleted recursively if it still exists —
// the path may name a single file or a whole directory tree.
type RemovingTree struct {
	fs     billy.Filesystem
	path   string
	closed bool
}

// NewRemovingTree wraps an existing, caller-owned path. Of the options only
// WithFilesystem has an effect; allocation hints do not apply because
// nothing is allocated.
func NewRemovingTree(path string, opts ...Option) *RemovingTree {
	o := newOptions(opts)
	return &RemovingTree{fs: o.fs, path: path}
}

// Path returns the wrapped path.
func (r *RemovingTree) Path() string {
	return r.path
}

// Close removes the path and everything beneath it. A path that no longer
// exists is a no-op, not an error. Close is idempotent.
func (r *RemovingTree) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	ok, err := exists(r.fs, r.path)
	if err != nil {
		return wrapCleanupErrorf(err, "failed to stat %s", r.path)
	}
	if !ok {
		return nil
	}

	if err := util.RemoveAll(r.fs, r.path); err != nil {
		return wrapCleanupErrorf(err, "failed to remove %s", r.path)
	}
	return nil
}

// UsingRemovingTree runs fn with the given path and removes the path when
// fn returns, if it still exists. The removal runs on every exit path,
// including a panic in fn. A cleanup failure is joined onto fn's error
// rather than replacing it.
func UsingRemovingTree(path string, fn func(path string) error, opts ...Option) (err error) {
	tree := NewRemovingTree(path, opts...)
	defer func() {
		if cerr := tree.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(tree.Path())
}
