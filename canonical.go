package filekit

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// Canonicalize resolves h to its canonical absolute form, with symlinks
// and relative components resolved. Resolution can fail transiently for
// perfectly valid paths (networked or symlinked temp directories), so
// any failure is recovered locally by falling back to the lexically
// absolute form; the caller always gets a usable handle. This is the
// one operation that deliberately swallows its error.
//
// Symlink resolution runs against the host filesystem and is skipped
// for non-OS backends, which fall straight through to the absolute
// form.
func (k *Kit) Canonicalize(h Handle) Handle {
	abs, err := filepath.Abs(h.Path())
	if err != nil {
		return NewHandle(filepath.Clean(h.Path()))
	}

	if _, ok := k.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return NewHandle(resolved)
		}
	}

	return NewHandle(abs)
}
