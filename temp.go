package filekit

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	tempDirPrefix   = "filekit-"
	tempFilePattern = "filekit-*.tmp"
)

// WithTempDir creates a uniquely named directory under the temporary
// base, passes its canonical handle to fn, and deletes the directory
// and everything below it when fn returns, whether or not fn failed.
// Deletion walks the reverse of the breadth-first traversal order, so
// children are removed before their parents.
//
// An error from fn takes precedence over a cleanup error; the cleanup
// error is then logged at WARNING instead of returned. A cleanup error
// after a successful body is returned wrapped in ErrCleanup. If the
// directory cannot be created, ErrCreate is returned and fn never runs.
//
// Callers must not create symlinks inside the directory whose targets
// lie outside it; cleanup makes no attempt to arbitrate what such links
// reach.
func (k *Kit) WithTempDir(fn func(dir Handle) error) (err error) {
	path, err := afero.TempDir(k.fs, k.tempBase, tempDirPrefix)
	if err != nil {
		return fmt.Errorf("%w: temp dir: %w", ErrCreate, err)
	}

	dir := k.Canonicalize(NewHandle(path))

	defer func() {
		cleanupErr := k.removeTree(dir)
		if cleanupErr == nil {
			return
		}
		if err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrCleanup, dir, cleanupErr)
			return
		}
		k.log.Warningf("cleanup of %s failed after body error: %v", dir, cleanupErr)
	}()

	return fn(dir)
}

// WithTempFile creates a fresh empty file in the temporary base, passes
// its canonical handle to fn, and removes the file on every exit path.
// Error precedence matches WithTempDir.
func (k *Kit) WithTempFile(fn func(file Handle) error) (err error) {
	f, err := afero.TempFile(k.fs, k.tempBase, tempFilePattern)
	if err != nil {
		return fmt.Errorf("%w: temp file: %w", ErrCreate, err)
	}

	name := f.Name()
	if err := f.Close(); err != nil {
		_ = k.fs.Remove(name)
		return fmt.Errorf("%w: temp file: %w", ErrCreate, err)
	}

	file := k.Canonicalize(NewHandle(name))

	defer func() {
		cleanupErr := k.fs.Remove(file.Path())
		if cleanupErr == nil || os.IsNotExist(cleanupErr) {
			return
		}
		if err == nil {
			err = fmt.Errorf("%w: %s: %w", ErrCleanup, file, cleanupErr)
			return
		}
		k.log.Warningf("cleanup of %s failed after body error: %v", file, cleanupErr)
	}()

	return fn(file)
}

// removeTree deletes the subtree rooted at dir by removing nodes in the
// reverse of their breadth-first order. Entries the body already
// removed are tolerated.
func (k *Kit) removeTree(dir Handle) error {
	nodes, err := k.Tree(dir)
	if err != nil {
		// Listing failed mid-walk; fall back to a recursive delete.
		return k.fs.RemoveAll(dir.Path())
	}

	for i := len(nodes) - 1; i >= 0; i-- {
		if err := k.fs.Remove(nodes[i].Path()); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}
