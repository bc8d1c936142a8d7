package level

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional per-level settings file. Tuning keys use the same
// names as world.FromMap.
type Tuning struct {
	Title  string            `yaml:"title"`
	Tuning map[string]string `yaml:"tuning"`
}

// ParseTuning decodes a level settings document.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func loadTuning(fsys fs.FS, name string) (Tuning, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return Tuning{}, nil
	}
	if err != nil {
		return Tuning{}, err
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}
