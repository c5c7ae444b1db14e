package erosion

import (
	"math"

	"terragen/internal/heightfield"
)

// WindPass erodes exposed high points (spec §4.H): each interior cell's
// exposure above its tallest neighbor is shaved off, accumulating into an
// erosion mask the caller can use for diagnostics or shading. Heights are
// clamped at 0 (spec §3: "wind and thermal passes clamp at 0").
func WindPass(h *heightfield.Grid, windStrength float64, iterations int, mask *heightfield.Grid) {
	if windStrength <= 0 {
		return
	}
	w, ht := h.Width, h.Height
	for pass := 0; pass < iterations; pass++ {
		for y := 1; y < ht-1; y++ {
			for x := 1; x < w-1; x++ {
				hp := float64(h.Get(x, y))
				maxNeighbor := math.Inf(-1)
				for _, n := range carveNeighbor8 {
					if v := float64(h.Get(x+n[0], y+n[1])); v > maxNeighbor {
						maxNeighbor = v
					}
				}
				exposure := hp - maxNeighbor + 0.1
				if exposure < 0 {
					exposure = 0
				}
				delta := windStrength * exposure * 0.01
				newH := hp - delta
				if newH < 0 {
					newH = 0
				}
				h.Set(x, y, float32(newH))
				if mask != nil {
					mask.Set(x, y, mask.Get(x, y)+float32(delta))
				}
			}
		}
	}
}
