package rebar

import "github.com/alexiusacademia/gorcc/internal/is456"

// Params are the section-wide inputs shared by every bar
type Params struct {
	Dx, Dy float64 // section dimensions (mm)
	Xu     float64 // trial neutral-axis depth (mm)
	Fck    float64 // characteristic concrete strength (MPa)
	Fy     float64 // characteristic steel strength (MPa)

	Steel is456.SteelLaw // nil selects is456.Placeholder
}

// AxisResponse is a bar's response to bending about one axis
type AxisResponse struct {
	Strain         float64
	ConcreteStress float64 // MPa, displaced concrete
	SteelStress    float64 // MPa, signed
	Force          float64 // N, area × (fs - fc)
	Moment         float64 // N·mm, force × lever arm
}

// State is the response of one bar at one trial depth
type State struct {
	Bar LongitudinalBar
	X   AxisResponse
	Y   AxisResponse
}

// Strain returns the strain at a fibre offset leverArm from the centroid.
// When the neutral axis lies outside the section (xu > D) the strain profile
// pivots about the point 3D/7 from the most compressed face at 0.002;
// otherwise the extreme fibre reaches 0.0035.
func Strain(xu, d, leverArm float64) float64 {
	y := leverArm
	if xu > d {
		return is456.EpsilonC0 * (1.0 + (y-d/14.0)/(xu-3.0*d/7.0))
	}
	return is456.EpsilonCU * ((xu - d/2.0 + y) / xu)
}

// NewState evaluates a bar about both axes
func NewState(bar LongitudinalBar, p Params) State {
	area := bar.Area()
	return State{
		Bar: bar,
		X:   respond(area, bar.LeverArmX, p.Dx, p),
		Y:   respond(area, bar.LeverArmY, p.Dy, p),
	}
}

func respond(area, leverArm, d float64, p Params) AxisResponse {
	strain := Strain(p.Xu, d, leverArm)
	fc := is456.ConcreteStress(strain, p.Fck)
	fs := is456.NetSteelStress(p.Steel, strain, p.Fy)
	force := area * (fs - fc)

	return AxisResponse{
		Strain:         strain,
		ConcreteStress: fc,
		SteelStress:    fs,
		Force:          force,
		Moment:         force * leverArm,
	}
}
