package filter

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"terragen/internal/heightfield"
)

// minDuneResolution is the smallest grid side the dune filter operates on
// (spec §4.C: "only at resolutions >= 256").
const minDuneResolution = 256

// Dunes adds a directional sinusoid ridge field, modeling wind-aligned dune
// crests. The direction vector is expressed as an mgl64.Vec2 so the
// projection onto the dune axis is a plain dot product rather than a pair
// of manually-expanded trig terms.
type Dunes struct {
	Params DunesParams
}

func (f Dunes) Apply(g *heightfield.Grid) {
	if g.Width < minDuneResolution || g.Height < minDuneResolution {
		return
	}
	axis := mgl64.Vec2{math.Cos(f.Params.Direction), math.Sin(f.Params.Direction)}
	n := float64(g.Width)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			coord := mgl64.Vec2{float64(x), float64(y)}
			proj := axis.Dot(coord)
			d := math.Sin((proj/n)*f.Params.Scale*2*math.Pi) * f.Params.Amplitude
			g.Set(x, y, g.Get(x, y)+float32(d))
		}
	}
}
