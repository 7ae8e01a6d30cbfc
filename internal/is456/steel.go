package is456

import (
	"fmt"
	"math"
	"strings"
)

// SteelLaw maps a non-negative strain magnitude to a stress magnitude (MPa).
type SteelLaw interface {
	Name() string
	Stress(strain, fy float64) float64
}

// Placeholder is the simplified law min(fy, 200ε). It is not a code design
// curve and its outputs should not be treated as code compliant.
type Placeholder struct{}

func (Placeholder) Name() string { return "placeholder" }

func (Placeholder) Stress(strain, fy float64) float64 {
	return math.Min(fy, 200*strain)
}

// Bilinear is the elastic-perfectly-plastic design curve for mild steel
// (Fig. 23B), yielding at fy/Gamma.
type Bilinear struct {
	Es    float64
	Gamma float64
}

func (Bilinear) Name() string { return "bilinear" }

func (b Bilinear) Stress(strain, fy float64) float64 {
	es, gamma := b.defaults()
	return math.Min(es*strain, fy/gamma)
}

func (b Bilinear) defaults() (float64, float64) {
	es, gamma := b.Es, b.Gamma
	if es <= 0 {
		es = Es
	}
	if gamma <= 0 {
		gamma = GammaS
	}
	return es, gamma
}

// coldWorkedPoints are the (stress/fyd, inelastic strain) pairs of Fig. 23A
// as tabulated in SP 16 Table A.
var coldWorkedPoints = []struct {
	ratio     float64
	inelastic float64
}{
	{0.80, 0.0000},
	{0.85, 0.0001},
	{0.90, 0.0003},
	{0.95, 0.0007},
	{0.975, 0.0010},
	{1.00, 0.0020},
}

// ColdWorked is the multilinear design curve for cold-worked deformed bars
// (Fig. 23A). Stresses between tabulated points are interpolated linearly.
type ColdWorked struct {
	Es    float64
	Gamma float64
}

func (ColdWorked) Name() string { return "cold-worked" }

func (c ColdWorked) Stress(strain, fy float64) float64 {
	es, gamma := Bilinear(c).defaults()
	fyd := fy / gamma

	first := coldWorkedPoints[0]
	if strain <= first.ratio*fyd/es {
		return es * strain
	}

	prevStrain := first.ratio * fyd / es
	prevStress := first.ratio * fyd
	for _, p := range coldWorkedPoints[1:] {
		stress := p.ratio * fyd
		total := stress/es + p.inelastic
		if strain <= total {
			return prevStress + (stress-prevStress)*(strain-prevStrain)/(total-prevStrain)
		}
		prevStrain, prevStress = total, stress
	}
	return fyd
}

// SteelLawByName resolves a steel law from its name. An empty name selects
// the placeholder law.
func SteelLawByName(name string) (SteelLaw, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "placeholder":
		return Placeholder{}, nil
	case "bilinear", "mild":
		return Bilinear{Es: Es, Gamma: GammaS}, nil
	case "cold-worked", "coldworked", "hysd":
		return ColdWorked{Es: Es, Gamma: GammaS}, nil
	default:
		return nil, fmt.Errorf("unknown steel law %q (use placeholder, bilinear or cold-worked)", name)
	}
}
