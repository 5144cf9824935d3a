package fsops

import "github.com/mattn/go-zglob"

// CustomGlobber resolves glob patterns using mattn/go-zglob, which
// supports "**" for recursive matches.
type CustomGlobber struct{}

// Glob expands pattern and returns the matching file paths.
func (g CustomGlobber) Glob(pattern string) ([]string, error) {
	return zglob.Glob(pattern)
}
