package filter

import (
	"math"

	"terragen/internal/heightfield"
)

// SlopeBlur smooths flat terrain aggressively while backing off near steep
// slopes, so ridgelines survive the blur pass (spec §4.C).
type SlopeBlur struct {
	Params SlopeBlurParams
}

func (f SlopeBlur) Apply(g *heightfield.Grid) {
	for pass := 0; pass < f.Params.Iterations; pass++ {
		out := g.Clone()
		blurOnce(g, out, f.Params.Radius, f.Params.K)
		g.CopyFrom(out)
	}
}

func blurOnce(src, dst *heightfield.Grid, radius int, k float64) {
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			s := slopeMagnitude(src, x, y)
			rEff := effectiveRadius(radius, k, s)
			dst.Set(x, y, windowMean(src, x, y, rEff))
		}
	}
}

// slopeMagnitude returns the central-difference gradient magnitude at
// (x, y): sqrt((dh/dx)^2 + (dh/dy)^2).
func slopeMagnitude(g *heightfield.Grid, x, y int) float64 {
	dx := float64(g.Get(x+1, y) - g.Get(x-1, y))
	dy := float64(g.Get(x, y+1) - g.Get(x, y-1))
	return math.Sqrt(dx*dx + dy*dy)
}

// effectiveRadius implements r_eff = max(1, round(radius*(1-k*min(1,10s)))).
func effectiveRadius(radius int, k, s float64) int {
	attenuation := 1 - k*math.Min(1, 10*s)
	r := math.Round(float64(radius) * attenuation)
	if r < 1 {
		r = 1
	}
	return int(r)
}

// windowMean averages the square window of side 2*rEff+1 centered on
// (x, y), clamping reads at the grid edge.
func windowMean(g *heightfield.Grid, x, y, rEff int) float32 {
	var sum float64
	count := 0
	for dy := -rEff; dy <= rEff; dy++ {
		for dx := -rEff; dx <= rEff; dx++ {
			sum += float64(g.Get(x+dx, y+dy))
			count++
		}
	}
	return float32(sum / float64(count))
}
