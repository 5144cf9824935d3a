package ports

// Globber expands filesystem patterns into matching paths.
type Globber interface {
	Glob(pattern string) ([]string, error)
}

// Checksummer produces a hex digest of a file's contents.
type Checksummer interface {
	SHA256(path string) (string, error)
}
