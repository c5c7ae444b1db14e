package erosion

import "terragen/internal/heightfield"

// talusAngle is the slope threshold above which granular material is
// unstable (spec §4.H).
const talusAngle = 0.8

// ThermalPass moves mass downslope wherever a neighbor pair exceeds the
// talus angle (spec §4.H), double-buffered per pass so every cell's
// transfer is computed from the same pre-pass snapshot.
func ThermalPass(h *heightfield.Grid, temperatureCycles float64, iterations int) {
	if temperatureCycles <= 0 {
		return
	}
	w, ht := h.Width, h.Height
	for pass := 0; pass < iterations; pass++ {
		src := h.Clone()
		out := h.Clone()
		for y := 1; y < ht-1; y++ {
			for x := 1; x < w-1; x++ {
				hp := float64(src.Get(x, y))
				for _, n := range carveNeighbor8 {
					nx, ny := x+n[0], y+n[1]
					diff := hp - float64(src.Get(nx, ny))
					if diff <= talusAngle {
						continue
					}
					moved := (diff - talusAngle) * temperatureCycles * 0.001 * 0.5
					out.Set(x, y, out.Get(x, y)-float32(moved))
					out.Set(nx, ny, out.Get(nx, ny)+float32(moved))
				}
			}
		}
		clampNonNegative(out)
		h.CopyFrom(out)
	}
}

func clampNonNegative(g *heightfield.Grid) {
	data := g.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
}
