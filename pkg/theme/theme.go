// Package theme loads named box style presets from YAML.
//
// A theme file maps preset names to style documents. Polymorphic values
// accept the same shapes the engine does: spacings and radii are either a
// single scalar or a mapping, shadow offsets a scalar or an (x, y) pair,
// and colors hex strings or SVG color names. A malformed value fails the
// whole load; nothing is silently defaulted.
package theme

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/showbox/pkg/box"
	"github.com/go-drift/showbox/pkg/errors"
)

// DefaultFile is the theme file name LoadOptional looks for.
const DefaultFile = "showbox.yaml"

// Theme is a set of named style presets.
type Theme struct {
	presets map[string]box.Style
}

// Style returns the preset with the given name.
func (t *Theme) Style(name string) (box.Style, error) {
	if st, ok := t.presets[name]; ok {
		return st, nil
	}
	return box.Style{}, errors.Configf("theme.Style", "unknown preset %q", name)
}

// Names returns the preset names in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme: %w", err)
	}
	return Parse(data)
}

// LoadOptional reads showbox.yaml from dir if present. A missing file
// yields the built-in presets alone; a malformed file is still an error.
func LoadOptional(dir string) (*Theme, error) {
	data, err := os.ReadFile(filepath.Join(dir, DefaultFile))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Theme{presets: builtinPresets()}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", DefaultFile, err)
	}
	return Parse(data)
}

// Parse parses theme YAML. File presets are merged over the built-in ones;
// a file preset with a built-in name replaces it.
func Parse(data []byte) (*Theme, error) {
	const op = "theme.Parse"
	var doc struct {
		Presets map[string]styleDoc `yaml:"presets"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Config(op, err)
	}

	presets := builtinPresets()
	for name, sd := range doc.Presets {
		presets[name] = sd.build()
	}
	return &Theme{presets: presets}, nil
}
