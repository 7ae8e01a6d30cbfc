package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcc/internal/rebar"
)

// SectionDiagramData holds data for drawing a column section diagram
type SectionDiagramData struct {
	// Section dimensions (mm)
	Dx float64
	Dy float64

	// Trial neutral-axis depth (mm), measured from the compressed faces
	// x = Dx and y = Dy
	Xu float64

	// Effective cover to bar centroids (mm)
	Cover float64

	// Bar states in layout order
	Bars []rebar.State
}

// NeutralAxisX returns the x coordinate of the neutral axis for bending
// about the X lever arm, and whether it falls inside the section
func (d SectionDiagramData) NeutralAxisX() (float64, bool) {
	x := d.Dx - d.Xu
	return x, x >= 0
}

// NeutralAxisY is the Y-axis counterpart of NeutralAxisX
func (d SectionDiagramData) NeutralAxisY() (float64, bool) {
	y := d.Dy - d.Xu
	return y, y >= 0
}

// DrawASCIISectionDiagram creates an ASCII plan of the bar cage. Bars are
// marked ● in compression and ○ in tension for the X-axis response.
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	// Scale factors for ASCII drawing
	widthChars := 40
	heightChars := int(math.Round(float64(widthChars) * data.Dy / data.Dx / 2))
	heightChars = max(heightChars, 6)

	col := func(x float64) int {
		return min(widthChars-1, max(0, int(x/data.Dx*float64(widthChars))))
	}
	row := func(y float64) int {
		// row 0 is the top face (y = Dy)
		return min(heightChars-1, max(0, int((data.Dy-y)/data.Dy*float64(heightChars))))
	}

	grid := make([][]rune, heightChars)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", widthChars))
	}

	naCol := -1
	if x, ok := data.NeutralAxisX(); ok {
		naCol = col(x)
		for i := range grid {
			grid[i][naCol] = '┊'
		}
	}
	naRow := -1
	if y, ok := data.NeutralAxisY(); ok {
		naRow = row(y)
		for j := range grid[naRow] {
			if grid[naRow][j] == '┊' {
				grid[naRow][j] = '┼'
			} else {
				grid[naRow][j] = '┈'
			}
		}
	}

	for _, b := range data.Bars {
		mark := '○'
		if b.X.Strain > 0 {
			mark = '●'
		}
		grid[row(b.Bar.Y)][col(b.Bar.X)] = mark
	}

	sb.WriteString("\n")
	sb.WriteString("  COLUMN SECTION (plan)\n")
	sb.WriteString("  ────────────────────\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	for i, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if i == naRow {
			sb.WriteString(" ◄─ N.A. (y)")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))
	if naCol >= 0 {
		sb.WriteString(fmt.Sprintf("   %s▲ N.A. (x)\n", strings.Repeat(" ", naCol)))
	}

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ● = bar in compression   ○ = bar in tension (X-axis bending)\n")
	sb.WriteString(fmt.Sprintf("  Section %.0f × %.0f mm, effective cover %.1f mm\n", data.Dx, data.Dy, data.Cover))
	sb.WriteString(fmt.Sprintf("  N.A. at xu = %.1f mm from the compressed faces\n", data.Xu))

	return sb.String()
}

// DrawBarTable creates a fixed-width table of the bar states
func DrawBarTable(bars []rebar.State) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  #   Type     X      Y      εx         fsx     Px (kN)   εy         fsy     Py (kN)\n")
	sb.WriteString("  ──  ───────  ─────  ─────  ─────────  ──────  ────────  ─────────  ──────  ────────\n")
	for i, b := range bars {
		sb.WriteString(fmt.Sprintf("  %-2d  %-7s  %5.0f  %5.0f  %9.6f  %6.1f  %8.2f  %9.6f  %6.1f  %8.2f\n",
			i+1, b.Bar.Placement, b.Bar.X, b.Bar.Y,
			b.X.Strain, b.X.SteelStress, b.X.Force/1000,
			b.Y.Strain, b.Y.SteelStress, b.Y.Force/1000))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
