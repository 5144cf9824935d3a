package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/spf13/afero"
)

const currentFilePrintPattern = "▶ %s ↔ %s"

// Diff prints a unified diff between two text files. A missing file is
// treated as empty so additions and removals render as full-file
// hunks; two missing files are an error.
func (a *App) Diff(before, after string) error {
	beforeContent, beforeFound, err := a.readFileContent(before)
	if err != nil {
		return err
	}
	afterContent, afterFound, err := a.readFileContent(after)
	if err != nil {
		return err
	}

	if !beforeFound && !afterFound {
		return fmt.Errorf("neither %s nor %s exists", red(before), red(after))
	}

	edits := myers.ComputeEdits(span.URIFromPath(before), string(beforeContent), string(afterContent))
	diff := fmt.Sprint(gotextdiff.ToUnified(before, after, string(beforeContent), edits))

	if diff == "" {
		a.logger.Info("No differences found")
		return nil
	}

	a.logger.Infof(currentFilePrintPattern, cyan(before), cyan(after))
	fmt.Fprintln(a.out, diff)
	return nil
}

// readFileContent loads file contents while tolerating missing files.
func (a *App) readFileContent(path string) ([]byte, bool, error) {
	data, err := afero.ReadFile(a.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}
