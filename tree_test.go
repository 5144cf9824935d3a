package filekit

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeBreadthFirstOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/root/a/deep", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/root/b.txt", []byte("b"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/root/a/c.txt", []byte("c"), 0o644))

	k := New(WithFs(fs), WithLogger(testLogger(t)))

	nodes, err := k.Tree(NewHandle("/root"))
	require.NoError(t, err)

	paths := make([]string, 0, len(nodes))
	for _, node := range nodes {
		paths = append(paths, filepath.ToSlash(node.Path()))
	}

	assert.Equal(t, []string{"/root", "/root/a", "/root/b.txt", "/root/a/c.txt", "/root/a/deep"}, paths)
}

func TestTreeReversedPutsChildrenBeforeRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/r", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/r/a", nil, 0o644))
	require.NoError(t, afero.WriteFile(fs, "/r/b", nil, 0o644))

	k := New(WithFs(fs), WithLogger(testLogger(t)))

	nodes, err := k.Tree(NewHandle("/r"))
	require.NoError(t, err)
	require.Len(t, nodes, 3)

	assert.Equal(t, "/r", filepath.ToSlash(nodes[0].Path()), "root is always first")

	// Reversed, the root comes last and both children precede it.
	last := nodes[len(nodes)-1]
	assert.NotEqual(t, "/r", filepath.ToSlash(last.Path()))
	for _, node := range nodes[1:] {
		assert.Equal(t, "r", node.Parent().Base())
	}
}

func TestTreeNonDirectoryRoots(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/file.txt", []byte("x"), 0o644))

	k := New(WithFs(fs), WithLogger(testLogger(t)))

	nodes, err := k.Tree(NewHandle("/file.txt"))
	require.NoError(t, err)
	assert.Equal(t, []Handle{NewHandle("/file.txt")}, nodes)

	nodes, err = k.Tree(NewHandle("/does/not/exist"))
	require.NoError(t, err)
	assert.Equal(t, []Handle{NewHandle("/does/not/exist")}, nodes)
}
