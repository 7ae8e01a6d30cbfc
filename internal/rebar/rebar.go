// Package rebar describes longitudinal reinforcing bars and the strain,
// stress and force each bar develops at a trial neutral-axis depth.
package rebar

import "math"

// Rebar is a round reinforcing bar
type Rebar struct {
	Diameter float64 `json:"diameter"` // mm
}

// Area returns the cross-sectional area (mm²)
func (r Rebar) Area() float64 {
	return math.Pi * math.Pow(r.Diameter/2, 2)
}

// Placement identifies where a bar sits in the cage
type Placement int

const (
	Corner Placement = iota
	FaceX            // distributed along a face parallel to X
	FaceY            // distributed along a face parallel to Y
)

func (p Placement) String() string {
	switch p {
	case Corner:
		return "corner"
	case FaceX:
		return "x-face"
	case FaceY:
		return "y-face"
	default:
		return "unknown"
	}
}

// LongitudinalBar is a bar positioned in a Dx × Dy section.
// Lever arms are signed distances from the section centroid.
type LongitudinalBar struct {
	Rebar
	Placement Placement

	X float64 // mm from the section's left face
	Y float64 // mm from the section's bottom face

	LeverArmX float64 // X - Dx/2
	LeverArmY float64 // Y - Dy/2
}

// NewLongitudinalBar places a bar of the given diameter at (x, y)
func NewLongitudinalBar(diameter, x, y, dx, dy float64, placement Placement) LongitudinalBar {
	return LongitudinalBar{
		Rebar:     Rebar{Diameter: diameter},
		Placement: placement,
		X:         x,
		Y:         y,
		LeverArmX: x - dx/2,
		LeverArmY: y - dy/2,
	}
}
