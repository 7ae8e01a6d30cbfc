package rebar

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/alexiusacademia/gorcc/internal/is456"
)

func TestRebarArea(t *testing.T) {
	for _, d := range []float64{8, 10, 12, 16, 20, 25, 32} {
		got := Rebar{Diameter: d}.Area()
		want := math.Pi * d * d / 4
		if !scalar.EqualWithinRel(got, want, 1e-12) {
			t.Errorf("Area(%g) = %g, want %g", d, got, want)
		}
	}
}

func TestNewLongitudinalBarLeverArms(t *testing.T) {
	bar := NewLongitudinalBar(16, 56, 344, 400, 400, Corner)
	if bar.LeverArmX != -144 || bar.LeverArmY != 144 {
		t.Errorf("lever arms = (%g, %g), want (-144, 144)", bar.LeverArmX, bar.LeverArmY)
	}
	if bar.Placement.String() != "corner" {
		t.Errorf("placement = %s", bar.Placement)
	}
}

func TestStrain(t *testing.T) {
	tests := []struct {
		name     string
		xu, d, y float64
		want     float64
	}{
		{"inside, compression side", 150, 300, 94, 0.0021933333333333336},
		{"inside, tension side", 150, 300, -94, -0.0021933333333333336},
		{"inside, at centroid", 150, 300, 0, 0},
		{"outside, compression side", 400, 300, 94, 0.002534736842105263},
		{"outside, tension side", 400, 300, -94, 0.0011494736842105264},
		{"xu equals D", 300, 300, 94, 0.0028466666666666666},
		{"xu equals D, far side", 300, 300, -94, 0.0006533333333333333},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Strain(tt.xu, tt.d, tt.y)
			if !scalar.EqualWithinAbsOrRel(got, tt.want, 1e-15, 1e-12) {
				t.Errorf("Strain(%g, %g, %g) = %.17g, want %.17g", tt.xu, tt.d, tt.y, got, tt.want)
			}
		})
	}
}

func TestStrainAtDepthEqualToDimensionUsesInnerBranch(t *testing.T) {
	got := Strain(300, 300, 94)
	want := is456.EpsilonCU * (300 - 150 + 94) / 300
	if got != want {
		t.Errorf("Strain at xu == D = %.17g, want %.17g", got, want)
	}
}

func TestNewState(t *testing.T) {
	p := Params{Dx: 300, Dy: 300, Xu: 150, Fck: 25, Fy: 415}
	bar := NewLongitudinalBar(16, 244, 56, p.Dx, p.Dy, Corner)
	s := NewState(bar, p)

	checks := []struct {
		name      string
		got, want float64
	}{
		{"strain x", s.X.Strain, 0.0021933333333333336},
		{"fc x", s.X.ConcreteStress, 11.175},
		{"fs x", s.X.SteelStress, 0.4386666666666667},
		{"force x", s.X.Force, -2158.667899295438},
		{"moment x", s.X.Moment, -202914.78253377118},
		{"strain y", s.Y.Strain, -0.0021933333333333336},
		{"fc y", s.Y.ConcreteStress, 0},
		{"fs y", s.Y.SteelStress, -0.4386666666666667},
		{"force y", s.Y.Force, -88.19916655198226},
		{"moment y", s.Y.Moment, 8290.721655886333},
	}
	for _, c := range checks {
		if !scalar.EqualWithinAbsOrRel(c.got, c.want, 1e-12, 1e-9) {
			t.Errorf("%s = %.15g, want %.15g", c.name, c.got, c.want)
		}
	}
}

func TestNewStateSameAreaBothAxes(t *testing.T) {
	p := Params{Dx: 400, Dy: 600, Xu: 250, Fck: 30, Fy: 500, Steel: is456.ColdWorked{}}
	bar := NewLongitudinalBar(20, 60, 540, p.Dx, p.Dy, Corner)
	s := NewState(bar, p)

	ax := s.X.Force / (s.X.SteelStress - s.X.ConcreteStress)
	ay := s.Y.Force / (s.Y.SteelStress - s.Y.ConcreteStress)
	if !scalar.EqualWithinRel(ax, ay, 1e-12) || !scalar.EqualWithinRel(ax, bar.Area(), 1e-12) {
		t.Errorf("effective areas differ: x=%g y=%g bar=%g", ax, ay, bar.Area())
	}
}
