package filekit

import (
	"fmt"

	"github.com/spf13/afero"
)

// Tree returns root followed by every descendant in breadth-first
// order: all entries at depth d appear before any entry at depth d+1,
// and every entry appears strictly after its parent. A plain file or a
// missing path yields the root alone. Reversing the result therefore
// gives an order that is safe for deletion, children before parents.
//
// Directory listings come from the backing filesystem's lstat-based
// ReadDir, so on the OS filesystem symlinked directories are reported
// as links and not descended into.
func (k *Kit) Tree(root Handle) ([]Handle, error) {
	nodes := []Handle{root}

	info, err := k.fs.Stat(root.Path())
	if err != nil || !info.IsDir() {
		return nodes, nil
	}

	queue := []Handle{root}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := afero.ReadDir(k.fs, dir.Path())
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %w", ErrRead, dir, err)
		}

		for _, entry := range entries {
			child := dir.Join(entry.Name())
			nodes = append(nodes, child)
			if entry.IsDir() {
				queue = append(queue, child)
			}
		}
	}

	return nodes, nil
}
