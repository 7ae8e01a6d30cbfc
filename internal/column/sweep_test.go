package column

import (
	"context"
	"errors"
	"testing"
)

func TestDepths(t *testing.T) {
	got, err := Depths(50, 250, 5)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{50, 100, 150, 200, 250}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Depths()[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	if _, err := Depths(50, 250, 1); err == nil {
		t.Error("expected error for a single depth")
	}
	if _, err := Depths(0, 250, 5); !errors.Is(err, ErrDegenerateTrialDepth) {
		t.Errorf("err = %v, want ErrDegenerateTrialDepth", err)
	}
}

func TestDepthsByStep(t *testing.T) {
	got, err := DepthsByStep(30, 300, 30)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 || got[0] != 30 || got[9] != 300 {
		t.Errorf("DepthsByStep() = %v", got)
	}

	got, err = DepthsByStep(30, 310, 30)
	if err != nil {
		t.Fatal(err)
	}
	if got[len(got)-1] != 300 {
		t.Errorf("last depth = %g, want 300", got[len(got)-1])
	}

	if _, err := DepthsByStep(30, 300, 0); err == nil {
		t.Error("expected error for zero step")
	}
}

func TestSweep(t *testing.T) {
	s := referenceSection()
	depths := []float64{100, 150, 200, 300, 400, 600}

	results, err := s.Sweep(context.Background(), depths, Options{Workers: 3})
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(results) != len(depths) {
		t.Fatalf("got %d results, want %d", len(results), len(depths))
	}

	for i, c := range results {
		if c.Xu != depths[i] {
			t.Errorf("result %d at xu=%g, want %g", i, c.Xu, depths[i])
		}
		single, err := s.Analyze(depths[i])
		if err != nil {
			t.Fatal(err)
		}
		if single.Px != c.Px || single.Mx != c.Mx {
			t.Errorf("xu=%g: sweep (%g, %g) != analyze (%g, %g)", depths[i], c.Px, c.Mx, single.Px, single.Mx)
		}
	}

	assertClose(t, "Px at 150", results[1].Px, 401492.4031437659)
	assertClose(t, "Px at 400", results[4].Px, 916810.7572056018)
}

func TestSweepSingularDepth(t *testing.T) {
	s := referenceSection()
	s.Dx, s.Dy = 350, 350

	_, err := s.Sweep(context.Background(), []float64{100, 150, 200}, Options{Workers: 2})
	if !errors.Is(err, ErrSingularStressBlock) {
		t.Errorf("err = %v, want ErrSingularStressBlock", err)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := referenceSection().Sweep(ctx, []float64{100, 200}, Options{Workers: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
