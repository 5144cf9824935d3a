package fsops

import "github.com/codingsince1985/checksum"

// FileChecksummer hashes files on the local filesystem.
type FileChecksummer struct{}

// SHA256 returns the hex SHA-256 digest of the file at path.
func (c FileChecksummer) SHA256(path string) (string, error) {
	return checksum.SHA256sum(path)
}
