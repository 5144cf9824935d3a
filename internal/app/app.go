package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/filekit-go/filekit"
	"github.com/filekit-go/filekit/internal/fsops"
	"github.com/filekit-go/filekit/internal/helpers"
	"github.com/filekit-go/filekit/internal/ports"
)

// Dependencies aggregates runtime collaborators required by App.
type Dependencies struct {
	FS          afero.Fs
	Globber     ports.Globber
	Checksummer ports.Checksummer
	Logger      *logging.Logger
	Out         io.Writer
}

// App executes CLI operations on top of the filekit library.
type App struct {
	cfg         Config
	kit         *filekit.Kit
	fs          afero.Fs
	globber     ports.Globber
	checksummer ports.Checksummer
	logger      *logging.Logger
	out         io.Writer
}

// New constructs an App using the supplied configuration and
// dependencies, filling in production defaults for omitted ones.
func New(cfg Config, deps Dependencies) (*App, error) {
	if deps.FS == nil {
		deps.FS = afero.NewOsFs()
	}
	if deps.Globber == nil {
		deps.Globber = fsops.CustomGlobber{}
	}
	if deps.Checksummer == nil {
		deps.Checksummer = fsops.FileChecksummer{}
	}
	if deps.Logger == nil {
		return nil, errors.New("logger must be provided")
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}

	kit := filekit.New(
		filekit.WithFs(deps.FS),
		filekit.WithLogger(deps.Logger),
		filekit.WithTempBase(cfg.TempBase),
	)

	return &App{
		cfg:         cfg,
		kit:         kit,
		fs:          deps.FS,
		globber:     deps.Globber,
		checksummer: deps.Checksummer,
		logger:      deps.Logger,
		out:         deps.Out,
	}, nil
}

// Tree prints the breadth-first listing of root, one path per line,
// with directories highlighted.
func (a *App) Tree(root string) error {
	nodes, err := a.kit.Tree(filekit.NewHandle(root))
	if err != nil {
		return err
	}

	for _, node := range nodes {
		if a.ignored(node) {
			continue
		}

		if isDir, dirErr := afero.IsDir(a.fs, node.Path()); dirErr == nil && isDir {
			fmt.Fprintln(a.out, cyan(node.Path()))
			continue
		}
		fmt.Fprintln(a.out, node.Path())
	}

	return nil
}

// ignored reports whether any component of the path matches a
// configured ignore segment.
func (a *App) ignored(h filekit.Handle) bool {
	for _, segment := range h.Segments() {
		if helpers.Contains(a.cfg.IgnoreSegments, segment) {
			return true
		}
	}
	return false
}

// Checksum prints the SHA-256 digest of each file.
func (a *App) Checksum(paths []string) error {
	for _, path := range paths {
		digest, err := a.checksummer.SHA256(path)
		if err != nil {
			return fmt.Errorf("checksum %s: %w", path, err)
		}
		fmt.Fprintf(a.out, "%s  %s\n", digest, cyan(path))
	}
	return nil
}

// Glob expands pattern and prints each match.
func (a *App) Glob(pattern string) error {
	matches, err := a.globber.Glob(pattern)
	if err != nil {
		return err
	}

	if len(matches) == 0 {
		a.logger.Warningf("No matches for %s", yellow(pattern))
		return nil
	}

	for _, match := range matches {
		fmt.Fprintln(a.out, match)
	}
	return nil
}

// Touch creates an empty file at path, creating missing parent
// directories when parents is set.
func (a *App) Touch(path string, parents bool) error {
	h := filekit.NewHandle(path)

	if parents {
		return a.kit.CreateWithParents(h)
	}

	f, err := a.fs.Create(h.Path())
	if err != nil {
		return err
	}
	return f.Close()
}

// Cat prints the file decoded under the configured encoding.
func (a *App) Cat(path string) error {
	enc, err := filekit.EncodingByName(a.cfg.EncodingName)
	if err != nil {
		return fmt.Errorf("unknown encoding %q: %w", a.cfg.EncodingName, err)
	}

	contents, err := a.kit.ReadString(filekit.NewHandle(path), filekit.WithEncoding(enc))
	if err != nil {
		return err
	}

	fmt.Fprint(a.out, contents)
	return nil
}
