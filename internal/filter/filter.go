// Package filter implements the slope-adaptive blur, ridge unsharp-mask,
// and directional dune filters of spec §4.C, composed through a single
// Filter interface so the pyramid driver (package pipeline) can apply them
// uniformly regardless of kind (spec §9, Design Notes).
package filter

import "terragen/internal/heightfield"

// Filter is the variant-over-filter-kind contract spec §9 asks for:
// {FBM, SlopeBlur, RidgeSharpen, Dunes} all implement Apply.
type Filter interface {
	Apply(g *heightfield.Grid)
}

// SlopeBlurParams configures the slope-adaptive blur (spec §4.C).
type SlopeBlurParams struct {
	Radius     int
	K          float64
	Iterations int
}

// RidgeSharpenParams configures the 5-point-Laplacian unsharp mask.
type RidgeSharpenParams struct {
	Strength float64
}

// DunesParams configures the directional sinusoid dune filter. Direction is
// in radians, matching the biome contract's dunes.direction_radians field.
type DunesParams struct {
	Scale     float64
	Amplitude float64
	Direction float64
}
