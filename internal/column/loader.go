package column

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadFromFile loads and validates a section definition from a JSON or
// TOML file.
func LoadFromFile(path string) (*Section, error) {
	section, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := section.Validate(); err != nil {
		return nil, err
	}
	return section, nil
}

// ReadFile decodes a section file without validating it, so that missing
// material fields can be filled in before Validate runs. The format is
// chosen by extension; anything other than .toml is read as JSON.
func ReadFile(path string) (*Section, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var section Section
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &section); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &section); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	return &section, nil
}

// FillMaterials sets fck, fy and the steel law where the section leaves
// them unset. Values already present are kept.
func (s *Section) FillMaterials(fck, fy float64, steel string) {
	if s.Fck == 0 {
		s.Fck = fck
	}
	if s.Fy == 0 {
		s.Fy = fy
	}
	if s.Steel == "" {
		s.Steel = steel
	}
}
