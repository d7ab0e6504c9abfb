package temppathlib

import (
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	platformerrors "github.com/jmgilman/go/errors"
)

// maxAllocAttempts bounds the number of candidate names tried before the
// allocator gives up, mirroring os.CreateTemp.
const maxAllocAttempts = 10000

// SystemTempDir returns the default directory for temporary files: the
// parent used by the scopes when no WithBaseDir hint is given.
func SystemTempDir() string {
	return os.TempDir()
}

// splitPattern splits an os.CreateTemp-style pattern around its last "*".
// The random name component is inserted between the returned prefix and
// suffix. A pattern without "*" is all prefix.
func splitPattern(pattern string) (prefix, suffix string) {
	if i := strings.LastIndexByte(pattern, '*'); i >= 0 {
		return pattern[:i], pattern[i+1:]
	}
	return pattern, ""
}

// nextRandom returns the random name component for one allocation attempt.
func nextRandom() string {
	return strconv.FormatUint(uint64(rand.Uint32()), 10)
}

// prepareBaseDir resolves the parent directory for an allocation and makes
// sure it exists.
func prepareBaseDir(fs billy.Filesystem, dir string) (string, error) {
	if dir == "" {
		dir = SystemTempDir()
	}
	if err := fs.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// tempFile allocates and opens a uniquely named file under dir, following
// pattern. Uniqueness is enforced by the exclusive-create flag; on a name
// collision the next random candidate is tried.
//
// Billy's Filesystem.TempFile only understands a bare prefix, so the
// pattern-aware allocation is built from OpenFile here, the same way the
// provider wrappers build RemoveAll from Stat and Remove.
func tempFile(fs billy.Filesystem, dir, pattern string) (billy.File, string, error) {
	dir, err := prepareBaseDir(fs, dir)
	if err != nil {
		return nil, "", err
	}

	prefix, suffix := splitPattern(pattern)
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		name := fs.Join(dir, prefix+nextRandom()+suffix)
		f, err := fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return nil, "", err
		}
		return f, name, nil
	}

	return nil, "", platformerrors.Newf(CodeTempAllocation,
		"could not allocate a unique file in %s after %d attempts", dir, maxAllocAttempts)
}

// tempDir allocates a uniquely named directory under dir, following
// pattern. Billy's Dir interface only exposes MkdirAll, which succeeds on
// an existing directory, so uniqueness is enforced with a Stat probe
// before each attempt.
func tempDir(fs billy.Filesystem, dir, pattern string) (string, error) {
	dir, err := prepareBaseDir(fs, dir)
	if err != nil {
		return "", err
	}

	prefix, suffix := splitPattern(pattern)
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		name := fs.Join(dir, prefix+nextRandom()+suffix)
		if _, err := fs.Stat(name); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return "", err
		}
		if err := fs.MkdirAll(name, 0o700); err != nil {
			return "", err
		}
		return name, nil
	}

	return "", platformerrors.Newf(CodeTempAllocation,
		"could not allocate a unique directory in %s after %d attempts", dir, maxAllocAttempts)
}

// exists reports whether path exists on fs.
func exists(fs billy.Filesystem, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
