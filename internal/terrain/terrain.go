// Package terrain wires components A-J together into the public
// `generate(config, biome) -> output` operation (spec §6), owning the
// per-instance reusable buffers spec §5 requires.
package terrain

import (
	"terragen/internal/atlasgen"
	"terragen/internal/biome"
	"terragen/internal/config"
	"terragen/internal/erosion"
	"terragen/internal/heightfield"
	"terragen/internal/hydrology"
	"terragen/internal/pipeline"
)

// WaterFeatures bundles the four atlas-dimension float grids spec §3
// describes: waterMask, riverMask, beachMask, flowAccumulation, plus the
// wind pass's diagnostic erosion mask.
type WaterFeatures struct {
	WaterMask        *heightfield.Grid
	RiverMask        *heightfield.Grid
	BeachMask        *heightfield.Grid
	FlowAccumulation *heightfield.Grid
	ErosionMask      *heightfield.Grid
}

// Output is the public operation's return shape (spec §6).
type Output struct {
	Tiles         [][]*heightfield.Grid
	InnerSize     int
	Atlas         *heightfield.Grid
	AtlasWidth    int
	AtlasHeight   int
	Rects         [][]atlasgen.Rect
	WaterFeatures *WaterFeatures
}

// Generator is the single owner of the canvas across stages. It holds no
// reusable working buffers: every stage allocates its own N^2-sized working
// grids on each call (package heightfield.NewRect), so repeated Generate
// calls on the same instance allocate them again. Ownership matches
// spec §5's "the heightfield is
// exclusively owned by the pipeline for the duration of a run; callers must
// not hold aliases" — callers get back copies (Output's grids), never the
// live working canvas.
type Generator struct {
	canvas *heightfield.Grid
}

// NewGenerator returns a Generator ready for repeated Generate calls.
func NewGenerator() *Generator { return &Generator{} }

// Generate runs components A-J in the fixed order spec §2's data flow
// requires: pyramid (D, using B/C) -> flow (E) -> hydrology masks (F) ->
// river carve (G) -> geological erosion (H, which re-invokes E/F internally)
// -> tile extraction + atlas (I). cfg must already satisfy config.Validate;
// Generate does not re-validate it.
func (g *Generator) Generate(cfg config.GenerateConfig, b biome.Params) Output {
	cfg = cfg.ResolveSteps()
	inner := cfg.Inner()

	pcfg := pipeline.Config{
		Rows: cfg.Rows, Cols: cfg.Cols,
		Inner: inner, Overlap: cfg.Overlap,
		BaseSize: cfg.BaseSize, Steps: cfg.Steps,
		WorldScale: cfg.WorldScale, Seed: cfg.Seed,
	}
	g.canvas = pipeline.Generate(pcfg, b)

	riverThreshold := 0.0
	riverWidth, riverDepth, beachWidth := 0.0, 0.0, 0.0
	if b.Water != nil {
		riverThreshold = b.Water.RiverThreshold
		riverWidth = b.Water.RiverWidth
		riverDepth = b.Water.RiverDepth
		beachWidth = b.Water.BeachWidth
	}

	flow := hydrology.ComputeFlow(g.canvas)
	riverMask := hydrology.RiverMask(flow, riverThreshold)
	erosion.CarveRivers(g.canvas, riverMask, riverWidth, riverDepth)

	erosionParams := deriveErosionParams(cfg, b)
	result := erosion.Erode(g.canvas, erosionParams, riverThreshold, beachWidth)

	atlasOut := atlasgen.Build(g.canvas, cfg.Rows, cfg.Cols, inner, cfg.Overlap)
	if cfg.BlendSeams {
		atlasgen.BlendSeams(atlasOut.Atlas, cfg.Cols, inner, cfg.Overlap)
	}

	wf := &WaterFeatures{
		WaterMask:        atlasgen.PackAtlas(result.WaterMask, cfg.Rows, cfg.Cols, inner, cfg.Overlap),
		RiverMask:        atlasgen.PackAtlas(result.RiverMask, cfg.Rows, cfg.Cols, inner, cfg.Overlap),
		BeachMask:        atlasgen.PackAtlas(result.BeachMask, cfg.Rows, cfg.Cols, inner, cfg.Overlap),
		FlowAccumulation: atlasgen.PackAtlas(result.FlowAccumulation, cfg.Rows, cfg.Cols, inner, cfg.Overlap),
		ErosionMask:      atlasgen.PackAtlas(result.ErosionMask, cfg.Rows, cfg.Cols, inner, cfg.Overlap),
	}

	return Output{
		Tiles:         atlasOut.Tiles,
		InnerSize:     atlasOut.InnerSize,
		Atlas:         atlasOut.Atlas,
		AtlasWidth:    atlasOut.Atlas.Width,
		AtlasHeight:   atlasOut.Atlas.Height,
		Rects:         atlasOut.Rects,
		WaterFeatures: wf,
	}
}

// deriveErosionParams converts the config's meters-denominated seaLevel and
// the biome's heightScale into erosion.Params' unit-conversion contract
// (spec §9's Open Question; see DESIGN.md).
func deriveErosionParams(cfg config.GenerateConfig, b biome.Params) erosion.Params {
	return erosion.Params{
		TimeYears:         cfg.ErosionYears,
		SeaLevelMeters:    cfg.SeaLevel,
		HeightScaleMeters: b.HeightScaleM,
		WindStrength:      cfg.WindStrength,
		RainIntensity:     cfg.RainIntensity,
		TemperatureCycles: cfg.TemperatureCycles,
	}
}
