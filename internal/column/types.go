package column

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/is456"
)

// Section is a rectangular tied column section with a symmetric bar cage.
// The section is defined in a local coordinate system where:
// - the origin is the bottom-left corner
// - X runs along Dx, Y runs along Dy
type Section struct {
	Name        string `json:"name" toml:"name"`
	Description string `json:"description,omitempty" toml:"description"`

	// Geometry (mm)
	Dx  float64 `json:"dx" toml:"dx"`
	Dy  float64 `json:"dy" toml:"dy"`
	NrX int     `json:"nx" toml:"nx"` // bars per X face, corners included
	NrY int     `json:"ny" toml:"ny"` // bars per Y face, corners included

	ClearCover     float64 `json:"clear_cover" toml:"clear_cover"`
	TieDiameter    float64 `json:"tie_diameter" toml:"tie_diameter"`
	CornerDiameter float64 `json:"corner_diameter" toml:"corner_diameter"`
	OtherDiameter  float64 `json:"other_diameter" toml:"other_diameter"`

	// Materials (MPa)
	Fck float64 `json:"fck" toml:"fck"` // characteristic cube strength of concrete
	Fy  float64 `json:"fy" toml:"fy"`   // characteristic yield strength of steel

	// Steel stress-strain law: placeholder, bilinear or cold-worked
	Steel string `json:"steel,omitempty" toml:"steel"`

	// Trial neutral-axis depth used when none is given on the command line
	Xu float64 `json:"xu,omitempty" toml:"xu"`
}

// Validate checks the section inputs. Each failure identifies the field and
// unwraps to one of ErrInvalidGeometry or ErrInvalidMaterial.
func (s *Section) Validate() error {
	if s.Dx <= 0 {
		return invalid(ErrInvalidGeometry, "dx", s.Dx, "must be positive")
	}
	if s.Dy <= 0 {
		return invalid(ErrInvalidGeometry, "dy", s.Dy, "must be positive")
	}
	if s.NrX < 2 {
		return invalid(ErrInvalidGeometry, "nx", float64(s.NrX), "must be at least 2 (corner bars included)")
	}
	if s.NrY < 2 {
		return invalid(ErrInvalidGeometry, "ny", float64(s.NrY), "must be at least 2 (corner bars included)")
	}

	nonNegative := []struct {
		field string
		value float64
	}{
		{"clear_cover", s.ClearCover},
		{"tie_diameter", s.TieDiameter},
		{"corner_diameter", s.CornerDiameter},
		{"other_diameter", s.OtherDiameter},
	}
	for _, f := range nonNegative {
		if f.value < 0 {
			return invalid(ErrInvalidGeometry, f.field, f.value, "must not be negative")
		}
	}

	if s.Fck <= 0 {
		return invalid(ErrInvalidMaterial, "fck", s.Fck, "must be positive")
	}
	if s.Fy <= 0 {
		return invalid(ErrInvalidMaterial, "fy", s.Fy, "must be positive")
	}
	if _, err := is456.SteelLawByName(s.Steel); err != nil {
		return &ValidationError{Kind: ErrInvalidMaterial, Field: "steel", msg: err.Error()}
	}
	return nil
}

// BarCount returns the number of longitudinal bars in the cage
func (s *Section) BarCount() int {
	return 4 + 2*(s.NrX-2) + 2*(s.NrY-2)
}

func invalid(kind error, field string, value float64, reason string) error {
	return &ValidationError{
		Kind:  kind,
		Field: field,
		Value: value,
		msg:   fmt.Sprintf("%s = %g %s", field, value, reason),
	}
}
