package adapters

import (
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for path, contents := range files {
		writeTestFile(t, fs, path, contents)
	}
	return fs
}

func writeTestFile(t *testing.T, fs billy.Filesystem, path string, contents string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, util.WriteFile(fs, path, []byte(contents), 0644))
}
