package pipeline

import "math"

// CanvasMapper maps a pixel position in the final-resolution continuous
// canvas to the world (u, v) coordinate that spec §4.B's FBM formula
// samples. It implements the exact worldUV decomposition of §4.B — a pixel
// is assigned to the tile whose inner region contains it, then mapped via
// (c + xInner/(inner-1)) * worldScale — so that two canvas pixels on either
// side of a tile seam (one the last inner pixel of tile c, the other the
// first inner pixel of tile c+1) resolve to the identical world coordinate
// (c+1)*worldScale, per the continuity guarantee the spec describes.
//
// Because this module ships the continuous-then-split pipeline variant
// (spec §9: "ship only the continuous path"), tile continuity is already
// guaranteed by construction — adjacent tiles are literal slices of the
// same backing array. This mapper additionally reproduces the literal
// per-tile worldUV formula so that noise sampling itself is defined exactly
// as §4.B specifies, not merely "some continuous function".
type CanvasMapper struct {
	Inner, Overlap int
	WorldScale     float64
}

// WorldUV maps final-canvas pixel coordinates (x, y), which may be
// real-valued (pyramid levels coarser than final resolution address the
// same physical location at fractional final-canvas coordinates), to the
// world (u, v) used for noise sampling.
func (m CanvasMapper) WorldUV(x, y float64) (u, v float64) {
	c, xInner := decompose(x-float64(m.Overlap), float64(m.Inner))
	r, yInner := decompose(y-float64(m.Overlap), float64(m.Inner))
	denom := float64(m.Inner - 1)
	if denom <= 0 {
		denom = 1
	}
	u = (c + xInner/denom) * m.WorldScale
	v = (r + yInner/denom) * m.WorldScale
	return u, v
}

// decompose splits a shifted coordinate into its tile index (floor) and the
// local offset within that tile, using floor division so it behaves
// correctly for negative coordinates (the overlap margin of the first
// tile).
func decompose(shifted, inner float64) (idx, local float64) {
	idx = math.Floor(shifted / inner)
	local = shifted - idx*inner
	return idx, local
}

// levelCoordToFinal rescales a pyramid-level pixel coordinate to its
// equivalent position in final-canvas-resolution space, using the same
// tensor scale ResampleTo uses, so that noise sampled at any pyramid level
// reflects the same physical location as the final pass.
func levelCoordToFinal(coord float64, levelLen, finalLen int) float64 {
	if levelLen <= 1 || finalLen <= 1 {
		return 0
	}
	scale := float64(finalLen-1) / float64(levelLen-1)
	return coord * scale
}
