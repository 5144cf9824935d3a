package filekit

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// removeFailFs refuses every Remove call, simulating a filesystem that
// cannot delete entries during teardown.
type removeFailFs struct {
	afero.Fs
}

func (f removeFailFs) Remove(name string) error {
	return fmt.Errorf("remove %s: operation not permitted", name)
}

func (f removeFailFs) RemoveAll(path string) error {
	return fmt.Errorf("remove %s: operation not permitted", path)
}

func TestWithTempDirEndToEnd(t *testing.T) {
	k := New(WithTempBase(t.TempDir()), WithLogger(testLogger(t)))

	var created Handle
	err := k.WithTempDir(func(dir Handle) error {
		created = dir

		nested := dir.Join("a").Join("b.txt")
		if err := k.CreateWithParents(nested); err != nil {
			return err
		}
		if err := k.WriteString(nested, "hello"); err != nil {
			return err
		}

		contents, err := k.ReadString(nested)
		if err != nil {
			return err
		}
		assert.Equal(t, "hello", contents)

		return nil
	})
	require.NoError(t, err)

	require.NotEmpty(t, created.Path())
	_, statErr := os.Stat(created.Path())
	assert.True(t, os.IsNotExist(statErr), "temp dir and all descendants must be gone")
}

func TestWithTempDirPropagatesBodyError(t *testing.T) {
	k := New(WithTempBase(t.TempDir()), WithLogger(testLogger(t)))

	bodyErr := errors.New("boom")
	var created Handle
	err := k.WithTempDir(func(dir Handle) error {
		created = dir
		require.NoError(t, k.WriteString(dir.Join("leftover.txt"), "x"))
		return bodyErr
	})

	assert.ErrorIs(t, err, bodyErr)

	_, statErr := os.Stat(created.Path())
	assert.True(t, os.IsNotExist(statErr), "cleanup must run even when the body fails")
}

func TestWithTempDirCreationFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	k := New(WithFs(fs), WithTempBase("/tmp"), WithLogger(testLogger(t)))

	invoked := false
	err := k.WithTempDir(func(Handle) error {
		invoked = true
		return nil
	})

	assert.ErrorIs(t, err, ErrCreate)
	assert.False(t, invoked, "body must not run when creation fails")
}

func TestWithTempDirSurfacesCleanupFailure(t *testing.T) {
	fs := removeFailFs{afero.NewMemMapFs()}
	k := New(WithFs(fs), WithTempBase("/tmp"), WithLogger(testLogger(t)))

	err := k.WithTempDir(func(Handle) error { return nil })

	assert.ErrorIs(t, err, ErrCleanup)
}

func TestWithTempDirBodyErrorWinsOverCleanupError(t *testing.T) {
	logger, logs := captureLogger(t)
	fs := removeFailFs{afero.NewMemMapFs()}
	k := New(WithFs(fs), WithTempBase("/tmp"), WithLogger(logger))

	bodyErr := errors.New("body failed")
	err := k.WithTempDir(func(Handle) error { return bodyErr })

	assert.ErrorIs(t, err, bodyErr)
	assert.NotErrorIs(t, err, ErrCleanup)
	assert.Contains(t, logs.String(), "cleanup", "suppressed cleanup failure must still be logged")
}

func TestWithTempDirToleratesBodyDeletingTree(t *testing.T) {
	k := New(WithTempBase(t.TempDir()), WithLogger(testLogger(t)))

	err := k.WithTempDir(func(dir Handle) error {
		return os.RemoveAll(dir.Path())
	})

	assert.NoError(t, err)
}

func TestWithTempFileLifecycle(t *testing.T) {
	k := New(WithTempBase(t.TempDir()), WithLogger(testLogger(t)))

	var created Handle
	err := k.WithTempFile(func(file Handle) error {
		created = file

		info, err := os.Stat(file.Path())
		if err != nil {
			return err
		}
		assert.False(t, info.IsDir())
		assert.Zero(t, info.Size(), "temp file starts empty")

		return k.WriteString(file, "scratch")
	})
	require.NoError(t, err)

	_, statErr := os.Stat(created.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestWithTempFilePropagatesBodyError(t *testing.T) {
	k := New(WithTempBase(t.TempDir()), WithLogger(testLogger(t)))

	bodyErr := errors.New("file body failed")
	var created Handle
	err := k.WithTempFile(func(file Handle) error {
		created = file
		return bodyErr
	})

	assert.ErrorIs(t, err, bodyErr)

	_, statErr := os.Stat(created.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestWithTempFileCreationFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	k := New(WithFs(fs), WithTempBase("/tmp"), WithLogger(testLogger(t)))

	invoked := false
	err := k.WithTempFile(func(Handle) error {
		invoked = true
		return nil
	})

	assert.ErrorIs(t, err, ErrCreate)
	assert.False(t, invoked)
}
