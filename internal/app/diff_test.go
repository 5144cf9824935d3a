package app

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffChangedFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/before.txt", []byte("shared\nold line\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/after.txt", []byte("shared\nnew line\n"), 0o644))

	a, out := newTestApp(t, NewConfig(), Dependencies{FS: fs})

	require.NoError(t, a.Diff("/before.txt", "/after.txt"))

	assert.Contains(t, out.String(), "-old line")
	assert.Contains(t, out.String(), "+new line")
}

func TestDiffIdenticalFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a.txt", []byte("same\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/b.txt", []byte("same\n"), 0o644))

	a, out := newTestApp(t, NewConfig(), Dependencies{FS: fs})

	require.NoError(t, a.Diff("/a.txt", "/b.txt"))
	assert.Empty(t, out.String())
}

func TestDiffMissingFileTreatedAsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/only.txt", []byte("content\n"), 0o644))

	a, out := newTestApp(t, NewConfig(), Dependencies{FS: fs})

	require.NoError(t, a.Diff("/missing.txt", "/only.txt"))
	assert.Contains(t, out.String(), "+content")
}

func TestDiffBothMissing(t *testing.T) {
	a, _ := newTestApp(t, NewConfig(), Dependencies{FS: afero.NewMemMapFs()})

	err := a.Diff("/nope.txt", "/also-nope.txt")
	assert.Error(t, err)
}
