// Package noise implements the deterministic 2D value-noise primitive and
// its fractal Brownian accumulation used by the pipeline's continuous
// heightfield synthesis (spec §4.B).
package noise

import "math"

// roundTo1e6 rounds v to the nearest 1e-6 before floor/fract, which spec §4.B
// calls out as a hard requirement: without it, two tiles sampling the same
// world coordinate from slightly different float paths can disagree at the
// seam, breaking the tile-continuity invariant.
func roundTo1e6(v float64) float64 {
	const scale = 1e6
	return math.Round(v*scale) / scale
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

// hashCorner implements h(i,j) = fract(sin((xi+i)*15731 + (yi+j)*789221) *
// 43758.5453123), the sine-hash lattice value specified in §4.B step 2.
func hashCorner(xi, yi, i, j float64) float64 {
	n := math.Sin((xi+i)*15731.0 + (yi+j)*789221.0)
	return fract(n * 43758.5453123)
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// Value2D evaluates the deterministic 2D value noise at (x, y), returning a
// result in [0,1]. This is the canonical noise primitive: its exact formula
// (sine-hash corners, smoothstep blend) is mandated by spec §4.B for
// cross-run, cross-platform determinism and must never be swapped for a
// "better" PRNG-backed lattice without a version bump (spec §9, Open
// Questions).
func Value2D(x, y float64) float64 {
	x = roundTo1e6(x)
	y = roundTo1e6(y)

	xi := math.Floor(x)
	yi := math.Floor(y)
	xf := x - xi
	yf := y - yi

	u := smoothstep(xf)
	v := smoothstep(yf)

	h00 := hashCorner(xi, yi, 0, 0)
	h10 := hashCorner(xi, yi, 1, 0)
	h01 := hashCorner(xi, yi, 0, 1)
	h11 := hashCorner(xi, yi, 1, 1)

	top := h00 + (h10-h00)*u
	bot := h01 + (h11-h01)*u
	return top + (bot-top)*v
}

// Source abstracts the 2D noise primitive so the pipeline can select an
// alternate backend (see PerlinSource) without touching callers. The
// canonical HashSource is the only backend exercised by the determinism and
// continuity test suites; PerlinSource exists purely as an opt-in answer to
// the Open Question in spec §9 and is never the default.
type Source interface {
	Sample2D(x, y float64) float64
}

// HashSource is the canonical noise source backed by Value2D.
type HashSource struct{}

func (HashSource) Sample2D(x, y float64) float64 { return Value2D(x, y) }
