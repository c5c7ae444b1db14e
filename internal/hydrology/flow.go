// Package hydrology implements the D8 flow-accumulation solver and the
// river/water/beach mask derivation built on top of it (spec §4.E, §4.F).
package hydrology

import (
	"math"
	"sort"

	"terragen/internal/heightfield"
)

// neighbor8 lists the eight D8 offsets with their travel distance: 1 for
// rook neighbors, sqrt(2) for diagonals.
var neighbor8 = [8]struct {
	dx, dy int
	dist   float64
}{
	{-1, -1, math.Sqrt2}, {0, -1, 1}, {1, -1, math.Sqrt2},
	{-1, 0, 1}, {1, 0, 1},
	{-1, 1, math.Sqrt2}, {0, 1, 1}, {1, 1, math.Sqrt2},
}

// ComputeFlow runs the D8 flow-accumulation sweep of spec §4.E: cells are
// visited in descending-height order (ties broken by (y,x) for
// determinism), and each cell's accumulated flow is added to its single
// steepest downhill neighbor. Every cell starts seeded with 1.0 unit of its
// own flow (spec §3: "flowAccumulation ... each cell seeded with 1 unit").
func ComputeFlow(h *heightfield.Grid) *heightfield.Grid {
	w, ht := h.Width, h.Height
	f := heightfield.NewRect(w, ht, 1.0)

	type cell struct{ x, y int }
	order := make([]cell, 0, w*ht)
	for y := 0; y < ht; y++ {
		for x := 0; x < w; x++ {
			order = append(order, cell{x, y})
		}
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		ha, hb := h.Get(a.x, a.y), h.Get(b.x, b.y)
		if ha != hb {
			return ha > hb
		}
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})

	for _, p := range order {
		hp := h.Get(p.x, p.y)
		bestSlope := 0.0
		bestX, bestY := -1, -1
		for _, n := range neighbor8 {
			nx, ny := p.x+n.dx, p.y+n.dy
			if nx < 0 || nx >= w || ny < 0 || ny >= ht {
				continue
			}
			slope := (float64(hp) - float64(h.Get(nx, ny))) / n.dist
			if slope > bestSlope {
				bestSlope = slope
				bestX, bestY = nx, ny
			}
		}
		if bestX < 0 {
			continue // sink: no downhill neighbor, keep current flow
		}
		f.Set(bestX, bestY, f.Get(bestX, bestY)+f.Get(p.x, p.y))
	}
	return f
}

// Max returns the largest value in a flow grid (used by the mask builder
// to normalize).
func Max(f *heightfield.Grid) float64 {
	max := 0.0
	for _, v := range f.Data() {
		if float64(v) > max {
			max = float64(v)
		}
	}
	return max
}
