package filter

import (
	"testing"

	"terragen/internal/heightfield"
)

func TestSlopeBlurFlattensCheckerboard(t *testing.T) {
	g := heightfield.New(16, 0)
	// checkerboard pattern: blur should reduce variance
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				g.Set(x, y, 1)
			}
		}
	}
	before := variance(g)
	SlopeBlur{Params: SlopeBlurParams{Radius: 2, K: 0.0, Iterations: 3}}.Apply(g)
	after := variance(g)
	if after >= before {
		t.Errorf("expected blur to reduce variance: before=%v after=%v", before, after)
	}
}

func TestRidgeSharpenFlatGridUnchanged(t *testing.T) {
	g := heightfield.New(8, 5)
	RidgeSharpen{Params: RidgeSharpenParams{Strength: 0.5}}.Apply(g)
	for _, v := range g.Data() {
		if v != 5 {
			t.Fatalf("ridge sharpen changed a flat field: got %v want 5", v)
		}
	}
}

func TestDunesSkippedBelowMinResolution(t *testing.T) {
	g := heightfield.New(64, 0)
	Dunes{Params: DunesParams{Scale: 16, Amplitude: 1, Direction: 0}}.Apply(g)
	for _, v := range g.Data() {
		if v != 0 {
			t.Fatalf("dunes modified a grid below the 256 resolution floor")
		}
	}
}

func TestDunesAppliesAboveMinResolution(t *testing.T) {
	g := heightfield.New(256, 0)
	Dunes{Params: DunesParams{Scale: 16, Amplitude: 1, Direction: 0.3}}.Apply(g)
	nonZero := false
	for _, v := range g.Data() {
		if v != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatal("expected dunes to modify a grid at the resolution floor")
	}
}

func variance(g *heightfield.Grid) float64 {
	n := float64(len(g.Data()))
	mean := 0.0
	for _, v := range g.Data() {
		mean += float64(v)
	}
	mean /= n
	sum := 0.0
	for _, v := range g.Data() {
		d := float64(v) - mean
		sum += d * d
	}
	return sum / n
}
