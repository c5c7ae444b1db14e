package noise

import "terragen/internal/heightfield"

// Config bundles the tunable parameters for one fractal-Brownian-motion
// accumulation pass, matching the biome output contract's `fbm` bundle
// (spec §6): {amplitude, frequency, octaves, lacunarity, gain, warp}.
type Config struct {
	Amplitude  float64
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
	Warp       float64
}

// FBM accumulates octaves of Source noise with a domain warp, exactly per
// the pseudocode in spec §4.B. Seed perturbs both the warp and octave
// sampling coordinates so that two biomes sharing a Config but differing
// only in seed produce uncorrelated terrain.
type FBM struct {
	Source Source
	Cfg    Config
	Seed   float64
}

// NewFBM constructs an FBM accumulator over the canonical HashSource.
func NewFBM(cfg Config, seed float64) FBM {
	return FBM{Source: HashSource{}, Cfg: cfg, Seed: seed}
}

// Sample evaluates the FBM accumulation at world-space (u, v) and returns
// the signed height contribution to add to the base heightfield. The
// formula mirrors spec §4.B step by step:
//
//	wx = noise((u+seed)*8.123, (v-seed)*7.321) * warp
//	wy = noise((u-seed)*5.551, (v+seed)*9.173) * warp
//	sum = Σ noise((u+wx)*freq + seed*1.7, (v+wy)*freq - seed*2.1) * amp
//	height += (sum*2 - 1) * amplitude
func (f FBM) Sample(u, v float64) float64 {
	seed := f.Seed
	cfg := f.Cfg

	wx := f.Source.Sample2D((u+seed)*8.123, (v-seed)*7.321) * cfg.Warp
	wy := f.Source.Sample2D((u-seed)*5.551, (v+seed)*9.173) * cfg.Warp

	sum := 0.0
	amp := 1.0
	freq := cfg.Frequency
	for o := 0; o < cfg.Octaves; o++ {
		sum += f.Source.Sample2D((u+wx)*freq+seed*1.7, (v+wy)*freq-seed*2.1) * amp
		freq *= cfg.Lacunarity
		amp *= cfg.Gain
	}
	return (sum*2 - 1) * cfg.Amplitude
}

// Apply lets FBM satisfy the filter.Filter contract (spec §9's "{FBM,
// SlopeBlur, RidgeSharpen, Dunes} all dispatch through one interface"),
// treating g's own pixel grid as a single inner tile (inner == g.Width) with
// no surrounding margin. The multi-scale pyramid driver (package pipeline)
// bypasses this in favor of its own canvas-aware world mapping, since a
// pyramid level needs to address world coordinates shared across the whole
// continuous canvas rather than just its own local grid.
func (f FBM) Apply(g *heightfield.Grid) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			u, v := WorldUV(0, 0, x, y, g.Width, 1.0)
			g.Set(x, y, g.Get(x, y)+float32(f.Sample(u, v)))
		}
	}
}

// WorldUV maps a pixel at continuous-canvas grid position (r, c, xInner,
// yInner) within a tile of inner size `inner` to the world coordinate that
// the continuous-tile pipeline must sample, per spec §4.B:
//
//	worldU = (c + xInner/(inner-1)) * worldScale
//	worldV = (r + yInner/(inner-1)) * worldScale
//
// Because adjacent tiles are slices of the same continuous field rather
// than independently generated, two tiles sharing a border pixel always
// compute the same (worldU, worldV) for it — this is what guarantees the
// tile-continuity invariant (spec §3).
func WorldUV(r, c, xInner, yInner, inner int, worldScale float64) (u, v float64) {
	fx := 0.0
	fy := 0.0
	if inner > 1 {
		fx = float64(xInner) / float64(inner-1)
		fy = float64(yInner) / float64(inner-1)
	}
	u = (float64(c) + fx) * worldScale
	v = (float64(r) + fy) * worldScale
	return u, v
}
