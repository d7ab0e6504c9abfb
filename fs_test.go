package temppathlib

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// testFilesystems returns the backends every scope is exercised against: a
// local filesystem rooted at a per-test directory and an in-memory one.
func testFilesystems(t *testing.T) map[string]billy.Filesystem {
	t.Helper()
	return map[string]billy.Filesystem{
		"osfs":  osfs.New(t.TempDir()),
		"memfs": memfs.New(),
	}
}
