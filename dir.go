package temppathlib

import (
	"errors"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// TemporaryDirectory is a scope around a uniquely named temporary
// directory. The directory exists from the moment the scope is constructed
// until Close deletes it together with everything beneath it.
type TemporaryDirectory struct {
	fs     billy.Filesystem
	path   string
	keep   bool
	closed bool
}

// NewTemporaryDirectory allocates a uniquely named directory, honoring the
// WithBaseDir, WithPrefix, and WithSuffix hints. On failure no directory is
// left behind and the error carries CodeTempAllocation.
func NewTemporaryDirectory(opts ...Option) (*TemporaryDirectory, error) {
	o := newOptions(opts)
	path, err := tempDir(o.fs, o.baseDir, o.pattern())
	if err != nil {
		return nil, wrapAllocError(err, "failed to allocate temporary directory")
	}
	return &TemporaryDirectory{fs: o.fs, path: path, keep: o.keep}, nil
}

// Path returns the path of the directory.
func (d *TemporaryDirectory) Path() string {
	return d.path
}

// Join joins path elements below the directory, delegating to the
// filesystem's join.
func (d *TemporaryDirectory) Join(elem ...string) string {
	return d.fs.Join(append([]string{d.path}, elem...)...)
}

// Filesystem returns the filesystem the directory lives on.
func (d *TemporaryDirectory) Filesystem() billy.Filesystem {
	return d.fs
}

// Close deletes the directory and everything beneath it. A directory that
// is already gone, e.g. because the caller moved or deleted it during the
// scope, is success, not an error. Close is idempotent; with WithKeep the
// directory is left in place.
func (d *TemporaryDirectory) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if d.keep {
		return nil
	}

	ok, err := exists(d.fs, d.path)
	if err != nil {
		return wrapCleanupErrorf(err, "failed to stat temporary directory %s", d.path)
	}
	if !ok {
		return nil
	}

	if err := util.RemoveAll(d.fs, d.path); err != nil {
		return wrapCleanupErrorf(err, "failed to remove temporary directory %s", d.path)
	}
	return nil
}

// UsingTemporaryDirectory allocates a temporary directory, runs fn with it,
// and deletes the directory when fn returns. The release runs on every exit
// path, including a panic in fn. A cleanup failure is joined onto fn's
// error rather than replacing it.
func UsingTemporaryDirectory(fn func(dir *TemporaryDirectory) error, opts ...Option) (err error) {
	dir, err := NewTemporaryDirectory(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dir.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(dir)
}
