package temppathlib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern string
		prefix  string
		suffix  string
	}{
		{pattern: "", prefix: "", suffix: ""},
		{pattern: "pre", prefix: "pre", suffix: ""},
		{pattern: "pre*", prefix: "pre", suffix: ""},
		{pattern: "pre*.txt", prefix: "pre", suffix: ".txt"},
		{pattern: "*.txt", prefix: "", suffix: ".txt"},
		{pattern: "a*b*c", prefix: "a*b", suffix: "c"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			prefix, suffix := splitPattern(tt.pattern)
			require.Equal(t, tt.prefix, prefix)
			require.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestOptionsPattern(t *testing.T) {
	t.Run("prefix only", func(t *testing.T) {
		o := newOptions([]Option{WithPrefix("pre-")})
		require.Equal(t, "pre-", o.pattern())
	})

	t.Run("suffix only", func(t *testing.T) {
		o := newOptions([]Option{WithSuffix(".txt")})
		require.Equal(t, "*.txt", o.pattern())
	})

	t.Run("prefix and suffix", func(t *testing.T) {
		o := newOptions([]Option{WithPrefix("pre-"), WithSuffix(".txt")})
		require.Equal(t, "pre-*.txt", o.pattern())
	})
}

func TestSystemTempDir(t *testing.T) {
	require.Equal(t, os.TempDir(), SystemTempDir())
}

func TestTempDir_CreatesMissingBaseDir(t *testing.T) {
	for name, fsys := range testFilesystems(t) {
		t.Run(name, func(t *testing.T) {
			path, err := tempDir(fsys, fsys.Join("missing", "parent"), "")
			require.NoError(t, err)

			info, err := fsys.Stat(path)
			require.NoError(t, err)
			require.True(t, info.IsDir())
		})
	}
}

func TestTempFile_CreatesMissingBaseDir(t *testing.T) {
	for name, fsys := range testFilesystems(t) {
		t.Run(name, func(t *testing.T) {
			f, path, err := tempFile(fsys, fsys.Join("missing", "parent"), "")
			require.NoError(t, err)
			require.NoError(t, f.Close())

			ok, err := exists(fsys, path)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}
}
