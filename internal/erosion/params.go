package erosion

import "math"

// Params bundles the geological-erosion knobs of spec §4.H. SeaLevelMeters
// and HeightScaleMeters answer the §9 Open Question about seaLevel's two
// units: erosion is configured in meters (matching the config surface's
// `seaLevel (meters, default 23)`), but the heightfield it operates on is in
// the biome's terrain-relative units, so SeaLevelRelative converts at the
// point of use rather than forcing every pass to carry a scale factor.
type Params struct {
	TimeYears         float64
	SeaLevelMeters    float64
	HeightScaleMeters float64
	WindStrength      float64
	RainIntensity     float64
	TemperatureCycles float64
}

// SeaLevelRelative converts SeaLevelMeters into the same [0,1]-ish,
// terrain-relative units the heightfield and biome water config use.
func (p Params) SeaLevelRelative() float64 {
	if p.HeightScaleMeters == 0 {
		return 0
	}
	return p.SeaLevelMeters / p.HeightScaleMeters
}

// Iteration budgets are a fixed linear discretization of simulated years
// (spec §4.H); do not tune without versioning outputs (spec §9).
func (p Params) WindIterations() int      { return ceilYears(p.TimeYears, 100) }
func (p Params) ThermalIterations() int   { return ceilYears(p.TimeYears, 50) }
func (p Params) HydraulicIterations() int { return ceilYears(p.TimeYears, 25) }

func ceilYears(years, divisor float64) int {
	if years <= 0 {
		return 0
	}
	return int(math.Ceil(years / divisor))
}
