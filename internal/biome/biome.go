// Package biome holds the named parameter bundles that §6 and §4.J call
// the biome output contract, and the three canonical presets (temperate,
// alpine, desert).
package biome

import "terragen/internal/noise"

// FBM mirrors noise.Config's field names in the biome contract's casing.
type FBM struct {
	Amplitude  float64
	Frequency  float64
	Octaves    int
	Lacunarity float64
	Gain       float64
	Warp       float64
}

func (f FBM) toNoiseConfig() noise.Config {
	return noise.Config{
		Amplitude:  f.Amplitude,
		Frequency:  f.Frequency,
		Octaves:    f.Octaves,
		Lacunarity: f.Lacunarity,
		Gain:       f.Gain,
		Warp:       f.Warp,
	}
}

// SlopeBlur mirrors filter.SlopeBlurParams's field names.
type SlopeBlur struct {
	Radius     int
	K          float64
	Iterations int
}

// Dunes mirrors filter.DunesParams's field names; a nil *Dunes on Params
// means the biome has no dune pass (spec §6: "optional dunes-config").
type Dunes struct {
	Scale            float64
	Amplitude        float64
	DirectionRadians float64
}

// Water holds the optional hydrology tuning knobs (spec §6: "optional
// water-config"). SeaLevel here is terrain-relative, in [0,1] height-grid
// units — distinct from erosion.Params.SeaLevelMeters, which is in meters (spec
// §9, Open Questions; see DESIGN.md for the conversion contract).
type Water struct {
	SeaLevel       float64
	RiverThreshold float64
	RiverWidth     float64
	RiverDepth     float64
	CoastalErosion float64
	BeachWidth     float64
}

// Params is one named biome bundle: {fbm, slopeBlur, ridgeSharpen, dunes?,
// heightScale_meters, water?} per spec §6.
type Params struct {
	Name         string
	FBM          FBM
	SlopeBlur    SlopeBlur
	RidgeSharpen float64
	Dunes        *Dunes
	HeightScaleM float64
	Water        *Water
	NoiseBackend noise.Backend
}

// NoiseConfig exposes FBM in the package's own Config shape for the
// pipeline to consume directly.
func (p Params) NoiseConfig() noise.Config { return p.FBM.toNoiseConfig() }

// Override carries per-bundle overrides onto a biome; a nil field is not
// overridden and is inherited from the base. A non-nil FBM, SlopeBlur,
// Dunes or Water replaces that whole bundle: its sub-fields are not merged
// one by one, so an FBM override must carry every fbm field it keeps.
type Override struct {
	FBM          *FBM
	SlopeBlur    *SlopeBlur
	RidgeSharpen *float64
	Dunes        *Dunes
	HeightScaleM *float64
	Water        *Water
}

// Merge applies Override onto base, returning a new Params. An empty
// Override returns a value equal to base (spec §8's "Biome override
// identity" law).
func Merge(base Params, o Override) Params {
	out := base
	if o.FBM != nil {
		out.FBM = *o.FBM
	}
	if o.SlopeBlur != nil {
		out.SlopeBlur = *o.SlopeBlur
	}
	if o.RidgeSharpen != nil {
		out.RidgeSharpen = *o.RidgeSharpen
	}
	if o.Dunes != nil {
		d := *o.Dunes
		out.Dunes = &d
	}
	if o.HeightScaleM != nil {
		out.HeightScaleM = *o.HeightScaleM
	}
	if o.Water != nil {
		w := *o.Water
		out.Water = &w
	}
	return out
}
