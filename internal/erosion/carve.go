// Package erosion implements the hardness-adaptive river carver (spec
// §4.G) and the wind/thermal/hydraulic geological erosion state machine
// (spec §4.H).
package erosion

import (
	"math"

	"terragen/internal/heightfield"
)

var carveNeighbor8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Hardness computes the per-cell fluvial-resistance grid of spec §4.G:
// hardness = min(1, 3*avg_slope + 0.4*heightFactor), where avg_slope is the
// mean absolute 8-neighbor height difference and heightFactor clamps
// (height + 0.3) to non-negative.
func Hardness(h *heightfield.Grid) *heightfield.Grid {
	w, ht := h.Width, h.Height
	out := heightfield.NewRect(w, ht, 0)
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			hp := float64(h.Get(x, y))
			sum := 0.0
			for _, n := range carveNeighbor8 {
				sum += math.Abs(hp - float64(h.Get(x+n[0], y+n[1])))
			}
			avgSlope := sum / 8
			heightFactor := math.Max(0, hp+0.3)
			hardness := math.Min(1, 3*avgSlope+0.4*heightFactor)
			out.Set(x, y, float32(hardness))
		}
	}
	return out
}

// profile is one of the three carve-shape bands of spec §4.G, selected by
// hardness: canyon (V-profile, narrow and deep), normal, or broad
// (U-profile, wide and shallow).
type profile struct {
	widthMul, depthMul float64
	erosionShape       func(d float64) float64
}

func selectProfile(hardness float64) profile {
	switch {
	case hardness > 0.7:
		return profile{0.3, 2.0, func(d float64) float64 { return math.Max(0, 1-d*d) }}
	case hardness > 0.4:
		return profile{0.7, 1.2, func(d float64) float64 { return math.Max(0, 1-math.Pow(d, 1.5)) }}
	default:
		return profile{1.8, 0.4, func(d float64) float64 { return math.Max(0, math.Cos(math.Pi*d/2)) }}
	}
}

// CarveRivers cuts the river channel into h in-place following the
// hardness-adaptive profile of spec §4.G, then runs the connection
// smoothing as a second pass. riverWidth and riverDepth are the biome's water
// config base values (pixels, height units); riverMask must already be
// derived from the pre-carve heightfield.
func CarveRivers(h, riverMask *heightfield.Grid, riverWidth, riverDepth float64) {
	hardness := Hardness(h)
	w, ht := h.Width, h.Height

	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			m := float64(riverMask.Get(x, y))
			if m <= 0 {
				continue
			}
			prof := selectProfile(float64(hardness.Get(x, y)))
			carveWidth := prof.widthMul * riverWidth
			carveDepth := prof.depthMul * riverDepth
			carveRadius := math.Ceil(carveWidth / 2)
			if carveRadius < 1 {
				carveRadius = 1
			}
			riverLevel := float64(h.Get(x, y)) - carveDepth*m

			ri := int(carveRadius)
			for dy := -ri; dy <= ri; dy++ {
				for dx := -ri; dx <= ri; dx++ {
					dist := math.Sqrt(float64(dx*dx + dy*dy))
					if dist > carveRadius {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= ht {
						continue
					}
					d := dist / carveRadius
					maxErosion := carveDepth * m * prof.erosionShape(d)
					hn := float64(h.Get(nx, ny))
					target := math.Max(riverLevel, hn-maxErosion)
					h.Set(nx, ny, float32(hn+(target-hn)*0.7))
				}
			}
		}
	}

	smoothConnections(h, riverMask)
}

// smoothConnections is the second pass of spec §4.G: strongly-masked river
// cells average toward their similarly-masked neighbors; weakly-masked
// cells blend 70/30 toward the unconditional 8-neighbor mean.
func smoothConnections(h, riverMask *heightfield.Grid) {
	src := h.Clone()
	w, ht := h.Width, h.Height
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			m := float64(riverMask.Get(x, y))
			switch {
			case m > 0.5:
				sum, count := 0.0, 0
				for _, n := range carveNeighbor8 {
					nx, ny := x+n[0], y+n[1]
					if riverMask.Get(nx, ny) > 0.3 {
						sum += float64(src.Get(nx, ny))
						count++
					}
				}
				if count > 0 {
					h.Set(x, y, float32(sum/float64(count)))
				}
			case m > 0.1:
				sum := 0.0
				for _, n := range carveNeighbor8 {
					sum += float64(src.Get(x+n[0], y+n[1]))
				}
				mean := sum / 8
				h.Set(x, y, float32(0.7*float64(src.Get(x, y))+0.3*mean))
			}
		}
	}
}
