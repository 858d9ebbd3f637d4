// Package config loads the optional user defaults file for project
// generation. Defaults live at <user config dir>/ezlay/config.yaml
// (~/.config/ezlay/config.yaml on Linux); a missing file simply yields
// zero defaults. Flags always win over file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ezlay/ezlay/pkg/models"
)

// Sentinel errors for the config package.
var (
	// ErrInvalidYAML indicates the defaults file could not be parsed.
	ErrInvalidYAML = errors.New("config: invalid YAML")

	// ErrInvalidDefaults indicates the defaults file parsed but holds an
	// unusable value.
	ErrInvalidDefaults = errors.New("config: invalid default value")
)

// Defaults are the user's preferred answers for fields the command line
// leaves unset. Booleans are pointers so an explicit "git: false" in the
// file is distinguishable from the key being absent.
type Defaults struct {
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Docker  *bool  `yaml:"docker"`
	Git     *bool  `yaml:"git"`
}

// Path returns the location of the user defaults file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "ezlay", "config.yaml"), nil
}

// Load reads the defaults file from its standard location. A missing
// file returns empty defaults and no error.
func Load() (*Defaults, error) {
	path, err := Path()
	if err != nil {
		return &Defaults{}, nil
	}
	return LoadFile(path)
}

// LoadFile reads and strictly decodes a defaults file. Unknown keys and
// malformed YAML are errors; a missing file is not.
func LoadFile(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Defaults{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read defaults: %w", err)
	}

	d := &Defaults{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(d); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: same as no defaults.
			return &Defaults{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w: %v", filepath.Base(path), ErrInvalidYAML, err)
	}

	if d.License != "" {
		if _, ok := models.ParseLicense(d.License); !ok {
			return nil, fmt.Errorf("%w: license %q", ErrInvalidDefaults, d.License)
		}
	}

	return d, nil
}
