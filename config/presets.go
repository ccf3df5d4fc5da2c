package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"robotaxi-economics/domain"
)

// PresetsFile is the on-disk layout of scenario presets.
type PresetsFile struct {
	Presets map[string]domain.AssumptionSet `yaml:"presets"`
}

// LoadPresets reads a YAML presets file. Unknown keys are rejected so a
// misspelled assumption fails loudly instead of silently keeping its zero
// value.
func LoadPresets(path string) (map[string]domain.AssumptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes presets from YAML bytes.
func ParsePresets(data []byte) (map[string]domain.AssumptionSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file PresetsFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("presets file is empty")
		}
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("presets file defines no presets")
	}
	return file.Presets, nil
}

// MergePresets overlays loaded presets on top of defaults.
func MergePresets(defaults, overrides map[string]domain.AssumptionSet) map[string]domain.AssumptionSet {
	merged := make(map[string]domain.AssumptionSet, len(defaults)+len(overrides))
	for name, a := range defaults {
		merged[name] = a
	}
	for name, a := range overrides {
		merged[name] = a
	}
	return merged
}
