package temppathlib

import (
	"errors"
	"io"
	"os"

	"github.com/go-git/go-billy/v5"
)

// NamedTemporaryFile is a scope around an open, uniquely named temporary
// file. Both the open handle and the path are usable for the lifetime of
// the scope; the path stays valid so the caller may rename or move the file
// before the scope ends. Close closes the stream first and then deletes the
// file, so platforms that refuse to remove open files do not fail the
// release.
type NamedTemporaryFile struct {
	fs         billy.Filesystem
	file       billy.File
	path       string
	keep       bool
	fileClosed bool
	closed     bool
}

// NewNamedTemporaryFile allocates a uniquely named file, honoring the
// WithBaseDir, WithPrefix, and WithSuffix hints, and opens it for reading
// and writing. The scope owns the deletion of the file; on failure no file
// is left behind and the error carries CodeTempAllocation.
func NewNamedTemporaryFile(opts ...Option) (*NamedTemporaryFile, error) {
	o := newOptions(opts)
	f, path, err := tempFile(o.fs, o.baseDir, o.pattern())
	if err != nil {
		return nil, wrapAllocError(err, "failed to allocate temporary file")
	}
	return &NamedTemporaryFile{fs: o.fs, file: f, path: path, keep: o.keep}, nil
}

// Path returns the path of the file.
func (f *NamedTemporaryFile) Path() string {
	return f.path
}

// File returns the open handle. Callers may close it directly; Close and
// CloseFile tolerate an already-closed handle.
func (f *NamedTemporaryFile) File() billy.File {
	return f.file
}

// Filesystem returns the filesystem the file lives on.
func (f *NamedTemporaryFile) Filesystem() billy.Filesystem {
	return f.fs
}

// Read delegates to the underlying file.
func (f *NamedTemporaryFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write delegates to the underlying file.
func (f *NamedTemporaryFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Seek delegates to the underlying file.
func (f *NamedTemporaryFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Truncate delegates to the underlying file.
func (f *NamedTemporaryFile) Truncate(size int64) error {
	return f.file.Truncate(size)
}

// Name returns the full path of the file. Billy backends disagree on the
// format of File.Name, so the path recorded at allocation is returned.
func (f *NamedTemporaryFile) Name() string {
	return f.path
}

// CloseFile closes only the underlying stream, leaving the file in place.
// Closing an already-closed stream is not an error. Useful for flushing the
// file before renaming it away during the scope.
func (f *NamedTemporaryFile) CloseFile() error {
	if f.fileClosed {
		return nil
	}
	f.fileClosed = true

	if err := f.file.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return wrapCleanupErrorf(err, "failed to close temporary file %s", f.path)
	}
	return nil
}

// Close closes the stream and then deletes the file. A file that is already
// gone is success, not an error. The deletion is attempted even if the
// stream close failed; both failures are reported. Close is idempotent;
// with WithKeep the file is left in place after the stream is closed.
func (f *NamedTemporaryFile) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	cerr := f.CloseFile()

	if f.keep {
		return cerr
	}

	ok, err := exists(f.fs, f.path)
	if err != nil {
		return errors.Join(cerr, wrapCleanupErrorf(err, "failed to stat temporary file %s", f.path))
	}
	if !ok {
		return cerr
	}

	if err := f.fs.Remove(f.path); err != nil {
		return errors.Join(cerr, wrapCleanupErrorf(err, "failed to remove temporary file %s", f.path))
	}
	return cerr
}

// UsingNamedTemporaryFile allocates a temporary file, runs fn with it, and
// closes and deletes the file when fn returns. The release runs on every
// exit path, including a panic in fn. A cleanup failure is joined onto fn's
// error rather than replacing it.
func UsingNamedTemporaryFile(fn func(file *NamedTemporaryFile) error, opts ...Option) (err error) {
	file, err := NewNamedTemporaryFile(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(file)
}

// Compile-time interface checks.
var (
	_ io.ReadWriteSeeker = (*NamedTemporaryFile)(nil)
	_ io.Closer          = (*NamedTemporaryFile)(nil)
)
