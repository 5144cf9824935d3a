package filekit

import (
	"os"

	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

// Kit bundles the collaborators shared by the stateful operations: the
// backing filesystem, a logger for cleanup diagnostics, and the base
// directory for temporary resources. The zero configuration targets the
// real OS filesystem and the system temporary directory.
type Kit struct {
	fs       afero.Fs
	log      *logging.Logger
	tempBase string
}

// Option mutates a Kit during construction.
type Option func(*Kit)

// WithFs overrides the backing filesystem.
func WithFs(fs afero.Fs) Option {
	return func(k *Kit) {
		if fs != nil {
			k.fs = fs
		}
	}
}

// WithLogger overrides the logger used for cleanup diagnostics.
func WithLogger(log *logging.Logger) Option {
	return func(k *Kit) {
		if log != nil {
			k.log = log
		}
	}
}

// WithTempBase overrides the base directory for temporary resources.
func WithTempBase(dir string) Option {
	return func(k *Kit) {
		if dir != "" {
			k.tempBase = dir
		}
	}
}

// New constructs a Kit with defaults and applies the provided options.
func New(opts ...Option) *Kit {
	k := &Kit{
		fs:       afero.NewOsFs(),
		log:      logging.MustGetLogger("filekit"),
		tempBase: os.TempDir(),
	}

	for _, opt := range opts {
		opt(k)
	}

	return k
}

// Fs returns the backing filesystem.
func (k *Kit) Fs() afero.Fs {
	return k.fs
}
