package column

import (
	"fmt"
	"sync"

	"github.com/alexiusacademia/gorcc/internal/is456"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/alexiusacademia/gorcc/internal/stressblock"
)

// Capacity holds the section resultants at one trial depth.
// Forces are in N and moments in N·mm.
type Capacity struct {
	Xu float64 // trial neutral-axis depth (mm)

	// Steel, summed over all bars
	Csx float64
	Csy float64
	Msx float64
	Msy float64

	// Concrete stress block per axis
	Gx    float64
	Gy    float64
	XBarX float64
	XBarY float64
	Ccx   float64
	Ccy   float64
	Mcx   float64
	Mcy   float64

	// Totals. Px and Py are independent; nothing forces them to agree.
	Px float64
	Py float64
	Mx float64
	My float64

	// Per-bar states in layout order
	Bars []rebar.State
}

// SteelSum is the steel contribution folded over a set of bars
type SteelSum struct {
	Csx, Csy float64
	Msx, Msy float64
}

// Add accumulates one bar
func (s SteelSum) Add(st rebar.State) SteelSum {
	return SteelSum{
		Csx: s.Csx + st.X.Force,
		Csy: s.Csy + st.Y.Force,
		Msx: s.Msx + st.X.Moment,
		Msy: s.Msy + st.Y.Moment,
	}
}

// SumSteel folds bar states into steel totals. Addition is the only
// combining step, so any order gives the same totals up to rounding.
func SumSteel(states []rebar.State) SteelSum {
	var sum SteelSum
	for _, st := range states {
		sum = sum.Add(st)
	}
	return sum
}

// Options tune an analysis
type Options struct {
	// Workers bounds the goroutines evaluating bars. Values below 2 run
	// sequentially.
	Workers int

	// Steel overrides the section's named steel law
	Steel is456.SteelLaw
}

// Analyze evaluates the section at trial depth xu
func (s *Section) Analyze(xu float64) (*Capacity, error) {
	return s.AnalyzeWith(xu, Options{})
}

// AnalyzeWith evaluates the section at trial depth xu with the given options
func (s *Section) AnalyzeWith(xu float64, opts Options) (*Capacity, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if xu <= 0 {
		return nil, invalid(ErrDegenerateTrialDepth, "xu", xu, "must be positive")
	}

	blockX, err := stressblock.Compute(xu, s.Dx)
	if err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	blockY, err := stressblock.Compute(xu, s.Dy)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	law := opts.Steel
	if law == nil {
		// Validate has already resolved the name
		law, _ = is456.SteelLawByName(s.Steel)
	}

	params := rebar.Params{Dx: s.Dx, Dy: s.Dy, Xu: xu, Fck: s.Fck, Fy: s.Fy, Steel: law}
	states := evaluateBars(s.Bars(), params, opts.Workers)
	steel := SumSteel(states)

	c := &Capacity{
		Xu:    xu,
		Csx:   steel.Csx,
		Csy:   steel.Csy,
		Msx:   steel.Msx,
		Msy:   steel.Msy,
		Gx:    blockX.G,
		Gy:    blockY.G,
		XBarX: blockX.XBar,
		XBarY: blockY.XBar,
		Bars:  states,
	}

	gross := s.Fck * s.Dx * s.Dy
	c.Ccx = blockX.A * gross
	c.Ccy = blockY.A * gross
	c.Mcx = c.Ccx * (0.5*s.Dx - c.XBarX)
	c.Mcy = c.Ccy * (0.5*s.Dy - c.XBarY)

	c.Px = c.Ccx + c.Csx
	c.Py = c.Ccy + c.Csy
	c.Mx = c.Mcx + c.Msx
	c.My = c.Mcy + c.Msy

	return c, nil
}

// evaluateBars maps every bar to its state. Bars are split into contiguous
// chunks, one per worker, and each state is written to its own index.
func evaluateBars(bars []rebar.LongitudinalBar, p rebar.Params, workers int) []rebar.State {
	states := make([]rebar.State, len(bars))
	if workers < 2 || len(bars) < 2*workers {
		for i, b := range bars {
			states[i] = rebar.NewState(b, p)
		}
		return states
	}

	chunk := (len(bars) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(bars); start += chunk {
		start := start // per-iteration copy (go 1.21 loop semantics)
		end := min(start+chunk, len(bars))
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				states[i] = rebar.NewState(bars[i], p)
			}
		}()
	}
	wg.Wait()
	return states
}
