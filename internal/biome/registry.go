package biome

import "terragen/internal/noise"

// Canonical biome presets with the exact numeric values enumerated in
// spec §6. Grounded on the teacher's package-level `var Biomes = []*Biome`
// registry style (internal/world/biome.go in the original tree).
var (
	Temperate = Params{
		Name: "temperate",
		FBM: FBM{
			Amplitude: 0.22, Frequency: 1.6, Octaves: 5,
			Lacunarity: 2.0, Gain: 0.5, Warp: 0.1,
		},
		SlopeBlur:    SlopeBlur{Radius: 2, K: 0.4, Iterations: 2},
		RidgeSharpen: 0.35,
		Dunes:        nil,
		HeightScaleM: 900,
		Water: &Water{
			SeaLevel: 0.08, RiverThreshold: 0.12, RiverWidth: 3,
			RiverDepth: 0.025, CoastalErosion: 0.04, BeachWidth: 10,
		},
		NoiseBackend: noise.BackendHash,
	}

	Alpine = Params{
		Name: "alpine",
		FBM: FBM{
			Amplitude: 0.35, Frequency: 1.3, Octaves: 6,
			Lacunarity: 2.0, Gain: 0.5, Warp: 0.12,
		},
		SlopeBlur:    SlopeBlur{Radius: 1, K: 0.2, Iterations: 1},
		RidgeSharpen: 0.6,
		Dunes:        nil,
		HeightScaleM: 1800,
		Water: &Water{
			SeaLevel: 0.05, RiverThreshold: 0.15, RiverWidth: 1.5,
			RiverDepth: 0.04, CoastalErosion: 0.03, BeachWidth: 6,
		},
		NoiseBackend: noise.BackendHash,
	}

	Desert = Params{
		Name: "desert",
		FBM: FBM{
			Amplitude: 0.15, Frequency: 2.0, Octaves: 5,
			Lacunarity: 2.0, Gain: 0.5, Warp: 0.15,
		},
		SlopeBlur:    SlopeBlur{Radius: 2, K: 0.6, Iterations: 2},
		RidgeSharpen: 0.2,
		Dunes:        &Dunes{Scale: 16, Amplitude: 0.03, DirectionRadians: 0.7853981633974483}, // pi/4
		HeightScaleM: 600,
		Water: &Water{
			SeaLevel: 0.1, RiverThreshold: 0.2, RiverWidth: 2,
			RiverDepth: 0.03, CoastalErosion: 0.05, BeachWidth: 8,
		},
		NoiseBackend: noise.BackendHash,
	}
)

// Registry is the named lookup table of canonical biomes, mirroring the
// teacher's `var Biomes = []*Biome{...}` slice but keyed by name since
// callers (config parsing, CLI flags) address biomes by string.
var Registry = map[string]Params{
	Temperate.Name: Temperate,
	Alpine.Name:    Alpine,
	Desert.Name:    Desert,
}

// Lookup returns the named canonical biome and whether it was found.
func Lookup(name string) (Params, bool) {
	p, ok := Registry[name]
	return p, ok
}
