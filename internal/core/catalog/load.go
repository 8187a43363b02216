package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// Load reads, validates and expands the catalog at path. Image globs are
// resolved relative to the catalog's directory.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	c.path = path

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	if err := c.Expand(filepath.Dir(path)); err != nil {
		return nil, err
	}

	return c, nil
}

// Parse decodes catalog data without validating or expanding it.
func Parse(data []byte, format Format) (*Catalog, error) {
	c := &Catalog{}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}

	return c, nil
}

// Expand resolves every image_glob against baseDir. Matches are sorted and
// appended after the explicit images of their owner. Calling Expand again
// replaces the previous matches.
func (c *Catalog) Expand(baseDir string) error {
	for i := range c.Hotels {
		h := &c.Hotels[i]

		matches, err := expandGlob(baseDir, h.ImageGlob)
		if err != nil {
			return fmt.Errorf("hotel %s: %w", h.ID, err)
		}
		h.globbed = matches

		for j := range h.Rooms {
			r := &h.Rooms[j]
			matches, err := expandGlob(baseDir, r.ImageGlob)
			if err != nil {
				return fmt.Errorf("room %s/%s: %w", h.ID, r.ID, err)
			}
			r.globbed = matches
		}
	}
	return nil
}

func expandGlob(baseDir, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, nil
	}
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(baseDir, pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expand image glob %q: %w", pattern, err)
	}
	slices.Sort(matches)
	return matches, nil
}
