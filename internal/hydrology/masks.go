package hydrology

import (
	"math"

	"terragen/internal/heightfield"
)

// RiverMask derives the river mask from a flow-accumulation grid and a
// threshold in [0,1] (spec §4.F). If the flow field is entirely zero this
// returns an all-zero mask rather than an error (spec §7's NumericDegeneracy
// is handled in-band, not surfaced as an error).
func RiverMask(f *heightfield.Grid, threshold float64) *heightfield.Grid {
	w, h := f.Width, f.Height
	out := heightfield.NewRect(w, h, 0)

	fmax := Max(f)
	if fmax == 0 {
		return out
	}

	base := heightfield.NewRect(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := float64(f.Get(x, y)) / fmax
			var v float64
			switch {
			case n > threshold:
				v = math.Min(1, (n-threshold)/(1-threshold))
			case n > 0.3*threshold:
				v = ((n - 0.3*threshold) / (0.7 * threshold)) * 0.3
			default:
				v = 0
			}
			base.Set(x, y, float32(v))
		}
	}

	out.CopyFrom(base)
	const dilationRadius = 1.5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			bp := float64(base.Get(x, y))
			if bp <= 0.5 {
				continue
			}
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist > dilationRadius {
						continue
					}
					val := bp * 0.6 * (1 - dist/dilationRadius)
					if val > float64(out.Get(nx, ny)) {
						out.Set(nx, ny, float32(val))
					}
				}
			}
		}
	}
	return out
}

// WaterMask is max(height <= seaLevel, riverMask) per cell (spec §4.F).
// seaLevel is in terrain-relative height units (erosion.Erode passes the
// config's meters converted by erosion.Params.SeaLevelRelative), compared
// directly against the (not yet atlas-normalized) heightfield, matching the
// spec's literal formula.
func WaterMask(hfield, riverMask *heightfield.Grid, seaLevel float64) *heightfield.Grid {
	w, h := hfield.Width, hfield.Height
	out := heightfield.NewRect(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float32(0)
			if float64(hfield.Get(x, y)) <= seaLevel {
				v = 1
			}
			if r := riverMask.Get(x, y); r > v {
				v = r
			}
			out.Set(x, y, v)
		}
	}
	return out
}

// BeachMask scans a (2W+1)^2 window around every land cell for the nearest
// water cell, falling off linearly with distance (spec §4.F). Water cells
// themselves carry the maximum beach value, matching the shoreline texture
// blend the renderer expects at the water's edge.
func BeachMask(waterMask *heightfield.Grid, beachWidthPixels float64) *heightfield.Grid {
	w, h := waterMask.Width, waterMask.Height
	out := heightfield.NewRect(w, h, 0)
	win := int(math.Ceil(beachWidthPixels))
	if win < 1 {
		win = 1
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if waterMask.Get(x, y) > 0 {
				out.Set(x, y, 1)
				continue
			}
			minDist := math.Inf(1)
			for dy := -win; dy <= win; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -win; dx <= win; dx++ {
					nx := x + dx
					if nx < 0 || nx >= w {
						continue
					}
					if waterMask.Get(nx, ny) <= 0 {
						continue
					}
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist < minDist {
						minDist = dist
					}
				}
			}
			if math.IsInf(minDist, 1) {
				out.Set(x, y, 0)
				continue
			}
			v := 1 - minDist/float64(win)
			if v < 0 {
				v = 0
			}
			out.Set(x, y, float32(v))
		}
	}
	return out
}
