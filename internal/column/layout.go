package column

import "github.com/alexiusacademia/gorcc/internal/rebar"

// EffectiveCover is the distance from a face to the centroid of the corner
// bars: clear cover, tie, then half the bar.
func (s *Section) EffectiveCover() float64 {
	return s.ClearCover + s.TieDiameter + s.CornerDiameter/2.0
}

// Bars lays out the cage: four corner bars, then the X-face pairs, then the
// Y-face pairs. Face bars are evenly spaced between the corners.
func (s *Section) Bars() []rebar.LongitudinalBar {
	c := s.EffectiveCover()
	bars := make([]rebar.LongitudinalBar, 0, s.BarCount())

	corner := func(x, y float64) {
		bars = append(bars, rebar.NewLongitudinalBar(s.CornerDiameter, x, y, s.Dx, s.Dy, rebar.Corner))
	}
	corner(c, c)
	corner(s.Dx-c, c)
	corner(s.Dx-c, s.Dy-c)
	corner(c, s.Dy-c)

	spacingX := (s.Dx - 2.0*c) / float64(s.NrX-1)
	spacingY := (s.Dy - 2.0*c) / float64(s.NrY-1)

	for i := 1; i < s.NrX-1; i++ {
		x := c + float64(i)*spacingX
		bars = append(bars,
			rebar.NewLongitudinalBar(s.OtherDiameter, x, c, s.Dx, s.Dy, rebar.FaceX),
			rebar.NewLongitudinalBar(s.OtherDiameter, x, s.Dy-c, s.Dx, s.Dy, rebar.FaceX),
		)
	}

	for i := 1; i < s.NrY-1; i++ {
		y := c + float64(i)*spacingY
		bars = append(bars,
			rebar.NewLongitudinalBar(s.OtherDiameter, c, y, s.Dx, s.Dy, rebar.FaceY),
			rebar.NewLongitudinalBar(s.OtherDiameter, s.Dx-c, y, s.Dx, s.Dy, rebar.FaceY),
		)
	}

	return bars
}

// SteelArea returns the total longitudinal steel area (mm²)
func (s *Section) SteelArea() float64 {
	var total float64
	for _, b := range s.Bars() {
		total += b.Area()
	}
	return total
}
