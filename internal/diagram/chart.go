package diagram

import (
	"github.com/guptarohit/asciigraph"
)

// DrawASCIICurve plots axial force (kN) over the swept trial depths for
// both axes in the terminal
func DrawASCIICurve(points []CurvePoint) string {
	if len(points) == 0 {
		return ""
	}

	px := make([]float64, len(points))
	py := make([]float64, len(points))
	for i, pt := range points {
		px[i] = pt.Px
		py[i] = pt.Py
	}

	return asciigraph.PlotMany([][]float64{px, py},
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption("Axial force (kN) vs trial depth: X axis, Y axis"),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red),
	)
}
