package command

import (
	"io"
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/filekit-go/filekit/internal/app"
	"github.com/filekit-go/filekit/internal/helpers"
)

const configFileName = ".filekit.yaml"

// Options describes the collaborators and defaults required to build
// the CLI.
type Options struct {
	Version     string
	Out         io.Writer
	InitLogging func(debug bool)
}

// Execute builds and runs the cobra command tree using the supplied
// options.
func Execute(opts Options, args []string) error {
	if opts.InitLogging == nil {
		opts.InitLogging = initLogging
	}

	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

type rootFlags struct {
	debug    bool
	encoding string
	ignore   []string
	tempBase string
}

// loadRootDefaults seeds flag defaults from the environment.
func loadRootDefaults() rootFlags {
	return rootFlags{
		encoding: helpers.GetEnv("FILEKIT_ENCODING", ""),
		tempBase: helpers.GetEnv("FILEKIT_TEMP_BASE", ""),
	}
}

// newRootCommand builds the root cobra command with global flags and
// subcommands.
func newRootCommand(opts Options) *cobra.Command {
	flags := loadRootDefaults()

	root := &cobra.Command{
		Use:          "filekit",
		Short:        "Filesystem convenience toolbox",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.InitLogging(flags.debug)
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug mode")
	root.PersistentFlags().StringVar(&flags.encoding, "encoding", flags.encoding, "Text encoding for read/write commands")
	root.PersistentFlags().StringSliceVarP(&flags.ignore, "ignore", "i", nil, "Ignore path segments (can be set multiple times)")
	root.PersistentFlags().StringVar(&flags.tempBase, "temp-base", flags.tempBase, "Base directory for temporary resources")

	build := func() (*app.App, error) {
		return buildApp(opts, &flags)
	}

	root.AddCommand(
		newTreeCommand(build),
		newDiffCommand(build),
		newChecksumCommand(build),
		newGlobCommand(build),
		newTouchCommand(build),
		newCatCommand(build),
	)

	return root
}

type appBuilder func() (*app.App, error)

// buildApp assembles the application with config precedence: defaults,
// then the config file, then flags.
func buildApp(opts Options, flags *rootFlags) (*app.App, error) {
	fs := afero.NewOsFs()

	cfg := app.NewConfig(
		app.WithDebug(flags.debug),
		app.WithVersion(opts.Version),
	)

	if err := app.LoadConfigFile(fs, configFileName, &cfg); err != nil {
		return nil, err
	}

	app.WithEncodingName(flags.encoding)(&cfg)
	app.WithTempBase(flags.tempBase)(&cfg)
	if len(flags.ignore) > 0 {
		app.WithIgnoreSegments(flags.ignore)(&cfg)
	}

	return app.New(cfg, app.Dependencies{
		FS:     fs,
		Logger: logging.MustGetLogger("filekit"),
		Out:    opts.Out,
	})
}

func newTreeCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "tree <path>",
		Short: "List a directory subtree in breadth-first order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Tree(args[0])
		},
	}
}

func newDiffCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Print a unified diff between two text files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Diff(args[0], args[1])
		},
	}
}

func newChecksumCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <path>...",
		Short: "Print the SHA-256 digest of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Checksum(args)
		},
	}
}

func newGlobCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "glob <pattern>",
		Short: "Expand a glob pattern (supports ** for recursion)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Glob(args[0])
		},
	}
}

func newTouchCommand(build appBuilder) *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Touch(args[0], parents)
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "Create missing parent directories")

	return cmd
}

func newCatCommand(build appBuilder) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file decoded under the configured encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := build()
			if err != nil {
				return err
			}
			return a.Cat(args[0])
		},
	}
}

// initLogging configures the process-wide logging backend.
func initLogging(debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(
		`%{color}%{level:.4s}%{color:reset} %{message}`,
	))

	leveled := logging.AddModuleLevel(formatted)
	if debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.INFO, "")
	}

	logging.SetBackend(leveled)
}
