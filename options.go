package temppathlib

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Option configures how a scope allocates and releases its resource.
type Option func(*options)

type options struct {
	fs      billy.Filesystem
	baseDir string
	prefix  string
	suffix  string
	keep    bool
}

// newOptions applies opts and fills in the defaults.
func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		o.fs = osfs.New("/")
	}
	return o
}

// pattern returns the allocation pattern in os.CreateTemp form: the random
// component of the generated name replaces the "*" between prefix and suffix.
func (o *options) pattern() string {
	if o.suffix == "" {
		return o.prefix
	}
	return o.prefix + "*" + o.suffix
}

// WithFilesystem sets the billy filesystem the scope operates on.
// If not provided, the local filesystem rooted at "/" is used.
//
// This option is primarily useful for testing, allowing use of memfs or
// other virtual filesystems.
//
// Example:
//
//	dir, err := temppathlib.NewTemporaryDirectory(
//	    temppathlib.WithFilesystem(memfs.New()))
func WithFilesystem(fs billy.Filesystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithBaseDir sets the parent directory for the allocated resource.
// If not provided, the system temp directory is used. The directory is
// created if it does not exist yet.
//
// Example:
//
//	dir, err := temppathlib.NewTemporaryDirectory(
//	    temppathlib.WithBaseDir("/var/cache/builds"))
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}

// WithPrefix sets the prefix of the generated name.
//
// Example:
//
//	file, err := temppathlib.NewNamedTemporaryFile(
//	    temppathlib.WithPrefix("upload-"))
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithSuffix sets the suffix of the generated name, e.g. a file extension.
//
// Example:
//
//	file, err := temppathlib.NewNamedTemporaryFile(
//	    temppathlib.WithSuffix(".json"))
func WithSuffix(suffix string) Option {
	return func(o *options) {
		o.suffix = suffix
	}
}

// WithKeep disables the deletion on Close. The stream of a
// NamedTemporaryFile is still closed; the resource itself is left in place
// for the caller to inspect or hand off.
//
// Example:
//
//	// Keep debug artifacts around after the scope ends.
//	dir, err := temppathlib.NewTemporaryDirectory(temppathlib.WithKeep())
func WithKeep() Option {
	return func(o *options) {
		o.keep = true
	}
}
