package filter

import "terragen/internal/heightfield"

// RidgeSharpen applies an unsharp mask using the 5-point Laplacian:
// out = h - strength*laplacian(h), laplacian = h(x-1,y)+h(x+1,y)+h(x,y-1)+
// h(x,y+1) - 4*h(x,y) (spec §4.C). It reads the whole source grid before
// writing any output, since the Laplacian at one cell depends on its
// neighbors' pre-sharpen values.
type RidgeSharpen struct {
	Params RidgeSharpenParams
}

func (f RidgeSharpen) Apply(g *heightfield.Grid) {
	src := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			h := float64(src.Get(x, y))
			lap := float64(src.Get(x-1, y)) + float64(src.Get(x+1, y)) +
				float64(src.Get(x, y-1)) + float64(src.Get(x, y+1)) - 4*h
			g.Set(x, y, float32(h-f.Params.Strength*lap))
		}
	}
}
