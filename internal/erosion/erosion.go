package erosion

import (
	"terragen/internal/heightfield"
	"terragen/internal/hydrology"
)

// Result bundles the hydrology masks the erosion pipeline recomputes at
// each stage that needs them, plus the diagnostic wind-erosion mask.
type Result struct {
	FlowAccumulation *heightfield.Grid
	RiverMask        *heightfield.Grid
	WaterMask        *heightfield.Grid
	BeachMask        *heightfield.Grid
	ErosionMask      *heightfield.Grid
}

// Erode runs the fixed-order geological erosion state machine of spec
// §4.H: base -> wind -> thermal -> hydraulic(with-reflow) -> finalized.
// Passes with a zero strength parameter are no-ops (their iteration budget
// is 0 or their strength gate skips the body), so TimeYears=0 leaves h
// byte-for-byte unchanged (spec §8's zero-time erosion law). h is modified
// in place; riverThreshold and beachWidthPixels come from the biome's water
// config, not from Params, since they are terrain-shape knobs rather than
// erosion-time knobs.
func Erode(h *heightfield.Grid, p Params, riverThreshold, beachWidthPixels float64) Result {
	erosionMask := heightfield.NewRect(h.Width, h.Height, 0)

	WindPass(h, p.WindStrength, p.WindIterations(), erosionMask)
	ThermalPass(h, p.TemperatureCycles, p.ThermalIterations())
	riverMask := HydraulicPass(h, p.RainIntensity, riverThreshold, p.HydraulicIterations())

	flow := hydrology.ComputeFlow(h)
	waterMask := hydrology.WaterMask(h, riverMask, p.SeaLevelRelative())
	beachMask := hydrology.BeachMask(waterMask, beachWidthPixels)

	return Result{
		FlowAccumulation: flow,
		RiverMask:        riverMask,
		WaterMask:        waterMask,
		BeachMask:        beachMask,
		ErosionMask:      erosionMask,
	}
}
