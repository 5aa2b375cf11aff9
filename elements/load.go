// SPDX-License-Identifier: MIT

package elements

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding accepted by Load.
type Format int

const (
	// FormatJSON is {"atoms":[{"symbol":"H","number":1}, ...]}.
	FormatJSON Format = iota
	// FormatYAML is the same document in YAML.
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Document is the wire shape of an atom list. The same struct is served by
// the HTTP API at /data/atoms.
type Document struct {
	Atoms []Atom `json:"atoms" yaml:"atoms"`
}

// Load decodes a Document from r and validates it into a Set.
func Load(r io.Reader, format Format) (*Set, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("elements: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("elements: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	return NewSet(doc.Atoms...)
}

// FormatFromPath maps .json, .yaml and .yml to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// LoadFile opens path and calls Load with the format implied by its extension.
func LoadFile(path string) (*Set, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elements: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, format)
}
