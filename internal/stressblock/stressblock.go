// Package stressblock reduces the parabola-rectangle concrete stress block
// over one section dimension to an equivalent resultant.
package stressblock

import (
	"errors"
	"math"
)

// ErrSingular is returned when 7·xu/D = 3, where the shape factor has a
// zero denominator.
var ErrSingular = errors.New("singular stress block (xu = 3D/7)")

// singularTol is how close 7·xu/D may come to 3 before the block is treated
// as singular. xu = 3*D/7 computed in floating point rarely lands on 3 exactly.
const singularTol = 1e-9

// Block is the equivalent stress block along one axis
type Block struct {
	G    float64 // shape factor
	XBar float64 // depth of the resultant from the compressed face (mm)
	A    float64 // resultant area factor, force = A·fck·Dx·Dy
}

// Compute returns the stress block for neutral-axis depth xu across a
// section dimension d. For xu > d the whole section is in compression and
// the block is truncated; otherwise the closed forms 0.416·xu and
// 0.362·xu/d apply.
func Compute(xu, d float64) (Block, error) {
	g, err := shapeFactor(xu, d)
	if err != nil {
		return Block{}, err
	}

	if xu > d {
		return Block{
			G:    g,
			XBar: (0.5 - 8*g/49.0) * (d / (1.0 - 4.0*g/21.0)),
			A:    0.447 * (1.0 - 4.0*g/21.0),
		}, nil
	}
	return Block{
		G:    g,
		XBar: 0.416 * xu,
		A:    0.362 * xu / d,
	}, nil
}

func shapeFactor(xu, d float64) (float64, error) {
	denom := 7.0*xu/d - 3.0
	if math.Abs(denom) <= singularTol {
		return 0, ErrSingular
	}
	return 16 / (denom * denom), nil
}
