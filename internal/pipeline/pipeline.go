// Package pipeline drives the multi-scale pyramid that builds the
// continuous heightfield (spec §4.D): at a geometric sequence of sizes it
// resamples, adds attenuated FBM, applies slope blur and (above a
// resolution floor) dunes, then finishes with a single ridge-sharpen pass.
package pipeline

import (
	"math"

	"terragen/internal/biome"
	"terragen/internal/filter"
	"terragen/internal/heightfield"
	"terragen/internal/noise"
)

// Config holds the geometry and pyramid schedule the driver needs. Rows and
// Cols describe the tile grid the continuous canvas must eventually be cut
// into (spec §4.I); Inner and Overlap are the per-tile inner size and
// context margin. BaseSize and Steps define the geometric pyramid (spec
// §4.D: "sizes base*2^i for i in [0,steps)").
type Config struct {
	Rows, Cols     int
	Inner, Overlap int
	BaseSize       int
	Steps          int
	WorldScale     float64
	Seed           int64
}

// FinalSize returns the continuous canvas's width and height: enough to
// hold Cols/Rows tiles of Inner pixels plus an Overlap margin on every side
// (spec §4.I, component I's description of the continuous field's size).
func (c Config) FinalSize() (width, height int) {
	width = c.Cols*c.Inner + 2*c.Overlap
	height = c.Rows*c.Inner + 2*c.Overlap
	return width, height
}

// levelSize returns the pyramid level i's (width, height), preserving the
// final canvas's aspect ratio at every intermediate step and snapping the
// last level to the exact final size (spec's base*2^i sequence generalized
// to a non-square final canvas; see DESIGN.md for the rectangular-pyramid
// decision).
func levelSize(c Config, finalW, finalH int, i int) (w, h int) {
	if i == c.Steps-1 {
		return finalW, finalH
	}
	w = c.BaseSize << uint(i)
	if w < 1 {
		w = 1
	}
	h = int(math.Round(float64(w) * float64(finalH) / float64(finalW)))
	if h < 1 {
		h = 1
	}
	return w, h
}

// Generate runs the full pyramid (spec §4.D) and returns the continuous
// heightfield, still in canvas space — component I (package atlasgen) cuts
// it into tiles.
func Generate(cfg Config, b biome.Params) *heightfield.Grid {
	finalW, finalH := cfg.FinalSize()
	finalMax := maxInt(finalW, finalH)

	w0, h0 := levelSize(cfg, finalW, finalH, 0)
	current := heightfield.NewRect(w0, h0, 0)

	src := noise.SelectSource(b.NoiseBackend, cfg.Seed)
	mapper := CanvasMapper{Inner: cfg.Inner, Overlap: cfg.Overlap, WorldScale: cfg.WorldScale}

	for i := 0; i < cfg.Steps; i++ {
		w, h := levelSize(cfg, finalW, finalH, i)
		current = current.ResampleToRect(w, h)

		levelMax := maxInt(w, h)
		amplitude := b.FBM.Amplitude / (1 + float64(finalMax-levelMax)/128)
		fbmCfg := b.NoiseConfig()
		fbmCfg.Amplitude = amplitude
		fbm := noise.FBM{Source: src, Cfg: fbmCfg, Seed: float64(cfg.Seed)}

		addFBMLevel(current, fbm, mapper, w, h, finalW, finalH)

		filter.SlopeBlur{Params: filter.SlopeBlurParams{
			Radius:     b.SlopeBlur.Radius,
			K:          b.SlopeBlur.K,
			Iterations: b.SlopeBlur.Iterations,
		}}.Apply(current)

		if b.Dunes != nil {
			filter.Dunes{Params: filter.DunesParams{
				Scale:     b.Dunes.Scale,
				Amplitude: b.Dunes.Amplitude,
				Direction: b.Dunes.DirectionRadians,
			}}.Apply(current)
		}
	}

	filter.RidgeSharpen{Params: filter.RidgeSharpenParams{Strength: b.RidgeSharpen}}.Apply(current)
	return current
}

// addFBMLevel accumulates one FBM pass onto a pyramid level, mapping each
// level pixel to the world coordinate it shares with the final-resolution
// canvas (via levelCoordToFinal) so a physical location samples the same
// noise regardless of which pyramid level currently addresses it.
func addFBMLevel(g *heightfield.Grid, fbm noise.FBM, mapper CanvasMapper, w, h, finalW, finalH int) {
	for y := 0; y < h; y++ {
		fy := levelCoordToFinal(float64(y), h, finalH)
		for x := 0; x < w; x++ {
			fx := levelCoordToFinal(float64(x), w, finalW)
			u, v := mapper.WorldUV(fx, fy)
			g.Set(x, y, g.Get(x, y)+float32(fbm.Sample(u, v)))
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
