package erosion

import (
	"terragen/internal/heightfield"
	"terragen/internal/hydrology"
)

// HydraulicPass recomputes flow and the river mask from the current
// heightfield, then erodes each interior cell by a combination of general
// runoff and river-channel erosion, depositing a fraction downhill (spec
// §4.H). riverThreshold selects the river mask's threshold the same way
// the hydrology mask builder's caller would. Returns the recomputed river
// mask so the caller can finalize water/beach masks without a third flow
// pass.
func HydraulicPass(h *heightfield.Grid, rainIntensity, riverThreshold float64, iterations int) *heightfield.Grid {
	if rainIntensity <= 0 {
		return hydrology.RiverMask(hydrology.ComputeFlow(h), riverThreshold)
	}

	w, ht := h.Width, h.Height
	var riverMask *heightfield.Grid
	for pass := 0; pass < iterations; pass++ {
		flow := hydrology.ComputeFlow(h)
		riverMask = hydrology.RiverMask(flow, riverThreshold)
		fmax := hydrology.Max(flow)
		if fmax == 0 {
			fmax = 1
		}

		for y := 1; y < ht-1; y++ {
			for x := 1; x < w-1; x++ {
				hp := float64(h.Get(x, y))
				slopeSum := 0.0
				bestSlope := 0.0
				bestX, bestY := -1, -1
				for _, n := range carveNeighbor8 {
					nx, ny := x+n[0], y+n[1]
					diff := hp - float64(h.Get(nx, ny))
					if diff > 0 {
						slopeSum += diff
					}
					if diff > bestSlope {
						bestSlope = diff
						bestX, bestY = nx, ny
					}
				}
				slope := slopeSum / 8
				flowFrac := float64(flow.Get(x, y)) / fmax

				hydro := flowFrac * slope * rainIntensity * 0.02
				river := float64(riverMask.Get(x, y)) * slope * rainIntensity * 0.05
				total := hydro + river

				h.Set(x, y, float32(hp-total))
				if bestX >= 0 {
					h.Set(bestX, bestY, h.Get(bestX, bestY)+float32(0.3*total))
				}
			}
		}
	}
	if riverMask == nil {
		riverMask = hydrology.RiverMask(hydrology.ComputeFlow(h), riverThreshold)
	}
	return riverMask
}
