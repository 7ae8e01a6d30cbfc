package is456

import "math"

// IS 456:2000 limit state of collapse constants

const (
	// Concrete strain limits (Section 38.1)
	EpsilonC0 = 0.002  // strain at the end of the parabolic branch
	EpsilonCU = 0.0035 // ultimate compressive strain in bending

	// Peak design stress of the parabola-rectangle block as a fraction of fck
	// (0.67 fck / 1.5, rounded as in the code)
	StressBlockPeak = 0.447

	// Partial safety factor for reinforcement (Section 36.4.2)
	GammaS = 1.15

	// Modulus of elasticity for steel (Section 5.6.3)
	Es = 200000.0 // MPa
)

// ConcreteStress returns the design compressive stress in concrete for a
// given strain using the parabola-rectangle idealization of Fig. 21.
// Tension is not carried, so non-positive strains give zero stress.
func ConcreteStress(strain, fck float64) float64 {
	if strain <= 0 {
		return 0
	}
	if strain >= EpsilonC0 {
		return StressBlockPeak * fck
	}
	// 447ε(1 - 250ε) reaches exactly 0.447 at ε = 0.002
	return 447.0 * strain * (1.0 - 250.0*strain) * fck
}

// NetSteelStress applies the magnitude law to |strain| and restores the sign,
// so tension and compression respond symmetrically.
func NetSteelStress(law SteelLaw, strain, fy float64) float64 {
	if law == nil {
		law = Placeholder{}
	}
	stress := law.Stress(math.Abs(strain), fy)
	if strain < 0 {
		return -stress
	}
	return stress
}

// NetFiberStress is the steel stress less the concrete stress at the same
// strain. The bar area already displaces concrete that the gross-section
// stress block counts, so the difference avoids counting it twice.
func NetFiberStress(law SteelLaw, strain, fck, fy float64) float64 {
	return NetSteelStress(law, strain, fy) - ConcreteStress(strain, fck)
}
