// Package heightfield implements the core scalar grid type shared by every
// other pipeline stage: a float32 plane with edge-clamped sampling and
// bilinear resampling. Tiles are square (Width==Height); pyramid levels,
// the continuous field and atlas are generally rectangular (spec §3, §4.I).
package heightfield

// Grid owns a row-major Width x Height float32 plane. Index (x, y)
// addresses column x, row y; the backing slice is laid out y*Width+x,
// matching the atlas's own row-major convention (spec §6, "Output data
// layout").
type Grid struct {
	Width, Height int
	data          []float32
}

// Size returns Width for a square grid; panics if the grid is not square,
// since it only makes sense for an N x N grid such as a tile.
func (g *Grid) Size() int {
	if g.Width != g.Height {
		panic("heightfield: Size() called on non-square grid")
	}
	return g.Width
}

// New allocates a square size x size grid with every cell set to fill.
func New(size int, fill float32) *Grid {
	return NewRect(size, size, fill)
}

// NewRect allocates a width x height grid with every cell set to fill.
func NewRect(width, height int, fill float32) *Grid {
	g := &Grid{Width: width, Height: height, data: make([]float32, width*height)}
	if fill != 0 {
		for i := range g.data {
			g.data[i] = fill
		}
	}
	return g
}

// NewFrom wraps an existing row-major buffer without copying. Len(data) must
// equal width*height; callers that violate this will panic on first access.
func NewFrom(width, height int, data []float32) *Grid {
	return &Grid{Width: width, Height: height, data: data}
}

// Data returns the backing row-major slice for callers (atlas packing, CLI
// export) that need direct access. Mutating it bypasses Grid's own bounds
// checks; callers must not resize it.
func (g *Grid) Data() []float32 { return g.data }

func (g *Grid) index(x, y int) int { return y*g.Width + x }

// Get samples at integer coordinates, clamping (x, y) independently on each
// axis to [0, Width) / [0, Height) so out-of-range reads behave as
// edge-extension rather than panicking or wrapping.
func (g *Grid) Get(x, y int) float32 {
	x = clampInt(x, 0, g.Width-1)
	y = clampInt(y, 0, g.Height-1)
	return g.data[g.index(x, y)]
}

// Set writes a value at integer coordinates. Out-of-range writes are
// silently ignored (there is no valid clamp target to write into instead).
func (g *Grid) Set(x, y int, v float32) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.data[g.index(x, y)] = v
}

// Clone returns a deep copy, used by any stage that needs a double-buffered
// write (slope blur, thermal erosion) without clobbering the read source.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, data: make([]float32, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g's contents with src's, panicking on size mismatch.
// Used to swap double-buffers back into the canonical grid at the end of a
// pass without reallocating.
func (g *Grid) CopyFrom(src *Grid) {
	if src.Width != g.Width || src.Height != g.Height {
		panic("heightfield: CopyFrom size mismatch")
	}
	copy(g.data, src.data)
}

// ResampleTo returns a new square grid of side m built from g by the
// standard tensor-product bilinear formula, sampling at u = i*(Width-1)/
// (m-1) (spec §3). It is idempotent when m == Width == Height and produces
// the same result regardless of whether m is larger or smaller than the
// source.
func (g *Grid) ResampleTo(m int) *Grid {
	return g.ResampleToRect(m, m)
}

// ResampleToRect is the rectangular generalization of ResampleTo, resampling
// independently along each axis; ResampleTo(m) is ResampleToRect(m, m).
func (g *Grid) ResampleToRect(mw, mh int) *Grid {
	if mw == g.Width && mh == g.Height {
		return g.Clone()
	}
	out := NewRect(mw, mh, 0)

	uScale := axisScale(g.Width, mw)
	vScale := axisScale(g.Height, mh)

	for j := 0; j < mh; j++ {
		v := axisCoord(j, mh, vScale)
		for i := 0; i < mw; i++ {
			u := axisCoord(i, mw, uScale)
			out.Set(i, j, g.sampleBilinear(u, v))
		}
	}
	return out
}

// axisScale returns the per-axis tensor scale factor (srcLen-1)/(dstLen-1),
// or 0 when dstLen==1 (the degenerate single-sample case handled by
// axisCoord).
func axisScale(srcLen, dstLen int) float64 {
	if dstLen <= 1 {
		return 0
	}
	return float64(srcLen-1) / float64(dstLen-1)
}

// axisCoord maps an output index to a source-space coordinate; a
// single-sample axis degenerates to source coordinate 0, matching the
// top-left-most sample's bilinear value.
func axisCoord(i, dstLen int, scale float64) float64 {
	if dstLen <= 1 {
		return 0
	}
	return float64(i) * scale
}

// sampleBilinear evaluates the grid at real-valued (u, v), clamping the
// corner lookups to the grid edge.
func (g *Grid) sampleBilinear(u, v float64) float32 {
	x0 := int(u)
	y0 := int(v)
	fx := float32(u - float64(x0))
	fy := float32(v - float64(y0))

	c00 := g.Get(x0, y0)
	c10 := g.Get(x0+1, y0)
	c01 := g.Get(x0, y0+1)
	c11 := g.Get(x0+1, y0+1)

	top := c00 + (c10-c00)*fx
	bot := c01 + (c11-c01)*fx
	return top + (bot-top)*fy
}

// SampleBilinear is the exported form of sampleBilinear, used by stages
// (pipeline upscaling) that need a real-valued sample rather than an
// integer-addressed one.
func (g *Grid) SampleBilinear(u, v float64) float32 {
	return g.sampleBilinear(u, v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
