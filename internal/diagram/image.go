package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	compressionColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	tensionColor     = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	neutralAxisColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSectionDiagram exports a column section diagram to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png.
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Column Section, xu = %.0f mm", data.Xu)
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"

	// Section outline
	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Dx, Y: 0},
		{X: data.Dx, Y: data.Dy},
		{X: 0, Y: data.Dy},
		{X: 0, Y: 0},
	})
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	// Tie line at the effective cover
	c := data.Cover
	ties, err := plotter.NewLine(plotter.XYs{
		{X: c, Y: c},
		{X: data.Dx - c, Y: c},
		{X: data.Dx - c, Y: data.Dy - c},
		{X: c, Y: data.Dy - c},
		{X: c, Y: c},
	})
	if err != nil {
		return err
	}
	ties.LineStyle.Color = color.Gray{Y: 128}
	ties.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(ties)

	// Neutral axes
	if x, ok := data.NeutralAxisX(); ok {
		if err := addDashed(p, plotter.XYs{{X: x, Y: -20}, {X: x, Y: data.Dy + 20}}); err != nil {
			return err
		}
	}
	if y, ok := data.NeutralAxisY(); ok {
		if err := addDashed(p, plotter.XYs{{X: -20, Y: y}, {X: data.Dx + 20, Y: y}}); err != nil {
			return err
		}
	}

	// Bars, split by the sign of their X-axis strain
	var comp, tens plotter.XYs
	for _, b := range data.Bars {
		pt := plotter.XY{X: b.Bar.X, Y: b.Bar.Y}
		if b.X.Strain > 0 {
			comp = append(comp, pt)
		} else {
			tens = append(tens, pt)
		}
	}
	for _, set := range []struct {
		pts   plotter.XYs
		color color.Color
		name  string
	}{
		{comp, compressionColor, "compression"},
		{tens, tensionColor, "tension"},
	} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = set.color
		s.GlyphStyle.Radius = vg.Points(5)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(set.name, s)
	}

	return save(p, 6*vg.Inch, 6*vg.Inch*vg.Length(data.Dy/data.Dx), filename)
}

// CurvePoint is one trial depth on a force-moment curve (kN, kN·m)
type CurvePoint struct {
	Xu float64
	Px float64
	Py float64
	Mx float64
	My float64
}

// ExportInteractionDiagram plots axial force against moment for both axes
// over a sweep of trial depths
func ExportInteractionDiagram(points []CurvePoint, filename string) error {
	p := plot.New()
	p.Title.Text = "Axial Force vs Moment"
	p.X.Label.Text = "Moment (kN·m)"
	p.Y.Label.Text = "Axial force (kN)"
	p.Add(plotter.NewGrid())

	xs := make(plotter.XYs, len(points))
	ys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xs[i] = plotter.XY{X: pt.Mx, Y: pt.Px}
		ys[i] = plotter.XY{X: pt.My, Y: pt.Py}
	}

	lx, err := plotter.NewLine(xs)
	if err != nil {
		return err
	}
	lx.LineStyle.Width = vg.Points(2)
	lx.LineStyle.Color = compressionColor
	p.Add(lx)
	p.Legend.Add("X axis", lx)

	ly, err := plotter.NewLine(ys)
	if err != nil {
		return err
	}
	ly.LineStyle.Width = vg.Points(2)
	ly.LineStyle.Color = tensionColor
	ly.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(ly)
	p.Legend.Add("Y axis", ly)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

func addDashed(p *plot.Plot, pts plotter.XYs) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Width = vg.Points(1.5)
	l.LineStyle.Color = neutralAxisColor
	l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(l)
	return nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
