package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/kastheco/lacquer/theme"
)

// Format identifies a theme file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported theme file extension: %q", filepath.Ext(path))
	}
}

// ParseError wraps a decoder failure with the file it came from.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s parse error: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("%s parse error in %s: %v", e.Format, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Decode turns raw theme file bytes into an unresolved spec.
func Decode(data []byte, format Format) (theme.Spec, error) {
	var spec theme.Spec
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &spec)
	case FormatYAML:
		// An empty document is not a syntax error; it is a spec with no
		// sections, which theme.Load reports as missing meta.
		if err = yaml.NewDecoder(bytes.NewReader(data)).Decode(&spec); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return theme.Spec{}, fmt.Errorf("unsupported theme format: %q", format)
	}
	if err != nil {
		return theme.Spec{}, &ParseError{Format: format, Err: err}
	}
	return spec, nil
}

// Parse decodes and resolves a theme. path is only used in error messages.
func Parse(data []byte, format Format, path string) (*theme.Theme, error) {
	spec, err := Decode(data, format)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return theme.Load(spec)
}

// LoadFile reads, decodes and resolves a theme file.
func LoadFile(path string) (*theme.Theme, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme file: %w", err)
	}
	t, err := Parse(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", path, err)
	}
	return t, nil
}
