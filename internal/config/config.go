// Package config validates and defaults the public generation config (spec
// §6, §7). ConfigError is raised before any allocation; it is the only
// error condition the core surfaces directly (spec §7 — everything else is
// handled in-band with a defined fallback output).
package config

import (
	"fmt"
	"math"
)

// GenerateConfig is the public operation's input (spec §6): `generate(config,
// biome) -> {tiles, innerSize, atlas, atlasSize, rects, waterFeatures?}`.
type GenerateConfig struct {
	Rows, Cols int
	TileSize   int // N; must satisfy 2*Overlap < TileSize
	Overlap    int // O >= 1
	BaseSize   int // default 64
	Steps      int // default derived from log2 of atlas size
	WorldScale float64
	Seed       int64
	BlendSeams bool
	// SeaLevel is in meters (spec §6's "seaLevel (meters, default 23)"),
	// distinct from the biome water config's terrain-relative SeaLevel
	// (spec §9's Open Question; see internal/terrain for the conversion).
	SeaLevel     float64
	ErosionYears float64

	// WindStrength, RainIntensity, and TemperatureCycles are the three
	// per-process strength knobs spec §4.H's ErosionParams requires but
	// spec §6's config surface never lists alongside seaLevel/erosionYears
	// — an omission in the distilled config contract. Exposed here at
	// their natural "full strength" default (1.0) so the three processes
	// run at the intensity their constants (0.01/0.001/0.02/0.05 in
	// internal/erosion) were tuned against; see DESIGN.md.
	WindStrength      float64
	RainIntensity     float64
	TemperatureCycles float64
}

// Default returns a GenerateConfig with every field at spec §6's documented
// default, except Rows/Cols/TileSize/Overlap/Seed which the caller must
// always supply explicitly — there is no sensible default grid shape.
func Default(rows, cols, tileSize, overlap int, seed int64) GenerateConfig {
	return GenerateConfig{
		Rows: rows, Cols: cols, TileSize: tileSize, Overlap: overlap, Seed: seed,
		BaseSize:     64,
		Steps:        0, // resolved by ResolveSteps once the grid shape is fixed
		WorldScale:   1.0,
		BlendSeams:        false,
		SeaLevel:          23,
		ErosionYears:      2500,
		WindStrength:      1.0,
		RainIntensity:     1.0,
		TemperatureCycles: 1.0,
	}
}

// ResolveSteps fills in Steps from log2 of the final atlas's largest
// dimension when the caller left it at the zero value (spec §6: "steps
// (default derived from log2 of atlas size)").
func (c GenerateConfig) ResolveSteps() GenerateConfig {
	if c.Steps > 0 {
		return c
	}
	inner := c.TileSize - 2*c.Overlap
	finalW := c.Cols*inner + 2*c.Overlap
	finalH := c.Rows*inner + 2*c.Overlap
	finalMax := finalW
	if finalH > finalMax {
		finalMax = finalH
	}
	base := c.BaseSize
	if base < 1 {
		base = 64
	}
	steps := int(math.Ceil(math.Log2(float64(finalMax)/float64(base)))) + 1
	if steps < 1 {
		steps = 1
	}
	c.Steps = steps
	return c
}

// ConfigError reports a structurally invalid config (spec §7), raised
// before any allocation.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("terragen: invalid config: %s", e.Reason)
}

// Validate checks the ConfigError taxonomy of spec §7: non-positive
// rows/cols, a degenerate or negative overlap, and a pyramid schedule too
// short to reach the tile size it must cover.
func Validate(c GenerateConfig) error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("rows and cols must be positive, got rows=%d cols=%d", c.Rows, c.Cols)}
	}
	if c.Overlap <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("overlap must be positive, got %d", c.Overlap)}
	}
	if 2*c.Overlap >= c.TileSize {
		return &ConfigError{Reason: fmt.Sprintf("2*overlap (%d) must be < tileSize (%d)", 2*c.Overlap, c.TileSize)}
	}
	resolved := c.ResolveSteps()
	base := resolved.BaseSize
	if base < 1 {
		base = 64
	}
	topLevel := base << uint(resolved.Steps-1)
	if topLevel < c.TileSize {
		return &ConfigError{Reason: fmt.Sprintf("pyramid (baseSize=%d, steps=%d) never reaches tileSize=%d", base, resolved.Steps, c.TileSize)}
	}
	return nil
}

// Inner is the per-tile inner region side (spec §3): tileSize - 2*overlap.
func (c GenerateConfig) Inner() int { return c.TileSize - 2*c.Overlap }
