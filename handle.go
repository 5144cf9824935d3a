// Package filekit provides filesystem conveniences on top of afero:
// path handles, scoped temporary resources with guaranteed cleanup,
// breadth-first traversal, best-effort canonical path resolution, and
// whole-file text IO under an explicit character encoding.
package filekit

import (
	"path/filepath"
	"strings"
)

// Handle identifies a filesystem path, absolute or relative. It is a
// plain value rather than an open resource: nothing is cached, and every
// operation re-resolves the path against the filesystem it runs on.
type Handle struct {
	path string
}

// NewHandle wraps path in a Handle. The path is not validated and does
// not need to exist.
func NewHandle(path string) Handle {
	return Handle{path: path}
}

// Join returns a handle for segment appended to h using the platform
// path separator. The result is not checked for existence.
func (h Handle) Join(segment string) Handle {
	return Handle{path: filepath.Join(h.path, segment)}
}

// Path returns the wrapped path.
func (h Handle) Path() string {
	return h.path
}

func (h Handle) String() string {
	return h.path
}

// Base returns the last component of the path.
func (h Handle) Base() string {
	return filepath.Base(h.path)
}

// Parent returns a handle for the containing directory.
func (h Handle) Parent() Handle {
	return Handle{path: filepath.Dir(h.path)}
}

// HasExt reports whether the file name (not the full path) ends with
// ext, ignoring case. A leading dot in ext is optional, so both "go"
// and ".go" match "main.go". Compound extensions work as plain suffix
// matches: "archive.tar.gz" matches ".tar.gz".
func (h Handle) HasExt(ext string) bool {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.HasSuffix(strings.ToLower(h.Base()), strings.ToLower(ext))
}

// Segments splits the path into its components using the platform
// separator, dropping empty and current-directory segments. ".."
// segments and symlinks are kept as-is, not resolved.
func (h Handle) Segments() []string {
	raw := strings.Split(filepath.ToSlash(h.path), "/")

	segments := make([]string, 0, len(raw))
	for _, segment := range raw {
		if segment == "" || segment == "." {
			continue
		}
		segments = append(segments, segment)
	}

	return segments
}
