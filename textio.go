package filekit

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultEncoding is used when a call does not select an encoding.
// Go's platform default is UTF-8 on every supported OS.
var DefaultEncoding encoding.Encoding = unicode.UTF8

// TextOption adjusts a single text IO call.
type TextOption func(*textConfig)

type textConfig struct {
	enc encoding.Encoding
}

// WithEncoding selects the character encoding for one call.
func WithEncoding(enc encoding.Encoding) TextOption {
	return func(c *textConfig) {
		if enc != nil {
			c.enc = enc
		}
	}
}

// EncodingByName resolves an encoding label such as "utf-8", "latin1",
// or "windows-1252" via the WHATWG index.
func EncodingByName(name string) (encoding.Encoding, error) {
	return htmlindex.Get(name)
}

func newTextConfig(opts []TextOption) textConfig {
	cfg := textConfig{enc: DefaultEncoding}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ReadString reads the whole file at h and decodes it under the
// selected encoding.
func (k *Kit) ReadString(h Handle, opts ...TextOption) (string, error) {
	cfg := newTextConfig(opts)

	raw, err := afero.ReadFile(k.fs, h.Path())
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRead, h, err)
	}

	decoded, err := cfg.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %w", ErrRead, h, err)
	}

	return string(decoded), nil
}

// WriteString overwrites the file at h with contents encoded under the
// selected encoding, creating the file when absent.
func (k *Kit) WriteString(h Handle, contents string, opts ...TextOption) error {
	cfg := newTextConfig(opts)

	encoded, err := cfg.enc.NewEncoder().Bytes([]byte(contents))
	if err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrWrite, h, err)
	}

	if err := afero.WriteFile(k.fs, h.Path(), encoded, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, h, err)
	}

	return nil
}

// ReadLines reads the whole file at h and splits it into lines. A
// trailing terminator does not produce a final empty line, and "\r\n"
// endings are accepted.
func (k *Kit) ReadLines(h Handle, opts ...TextOption) ([]string, error) {
	contents, err := k.ReadString(h, opts...)
	if err != nil {
		return nil, err
	}
	if contents == "" {
		return nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(contents, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines, nil
}

// WriteLines overwrites the file at h with each line followed by "\n",
// creating the file when absent.
func (k *Kit) WriteLines(h Handle, lines []string, opts ...TextOption) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return k.WriteString(h, b.String(), opts...)
}

// CreateWithParents creates every missing parent directory and then an
// empty file at h. A parent component that exists as a plain file makes
// the whole operation fail with ErrCreate.
func (k *Kit) CreateWithParents(h Handle) error {
	if err := k.fs.MkdirAll(h.Parent().Path(), 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, h, err)
	}

	f, err := k.fs.Create(h.Path())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, h, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreate, h, err)
	}

	return nil
}
