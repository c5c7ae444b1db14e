package terrain

import (
	"testing"

	"terragen/internal/biome"
	"terragen/internal/config"
)

func smallConfig() config.GenerateConfig {
	c := config.Default(2, 2, 128, 8, 1337)
	c.BaseSize = 32
	c.Steps = 3
	c.ErosionYears = 1000
	return c
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig()
	a := NewGenerator().Generate(cfg, biome.Temperate)
	b := NewGenerator().Generate(cfg, biome.Temperate)

	if len(a.Atlas.Data()) != len(b.Atlas.Data()) {
		t.Fatalf("atlas size differs between runs")
	}
	for i := range a.Atlas.Data() {
		if a.Atlas.Data()[i] != b.Atlas.Data()[i] {
			t.Fatalf("Generate is not deterministic at atlas index %d", i)
		}
	}
}

func TestGenerateMaskDomainsAndFlowFloor(t *testing.T) {
	cfg := smallConfig()
	out := NewGenerator().Generate(cfg, biome.Temperate)

	for _, v := range out.WaterFeatures.WaterMask.Data() {
		if v < 0 || v > 1 {
			t.Fatalf("waterMask out of [0,1]: %v", v)
		}
	}
	for _, v := range out.WaterFeatures.RiverMask.Data() {
		if v < 0 || v > 1 {
			t.Fatalf("riverMask out of [0,1]: %v", v)
		}
	}
	for _, v := range out.WaterFeatures.BeachMask.Data() {
		if v < 0 || v > 1 {
			t.Fatalf("beachMask out of [0,1]: %v", v)
		}
	}
	for _, v := range out.WaterFeatures.FlowAccumulation.Data() {
		if v < 1 {
			t.Fatalf("flowAccumulation below floor 1: %v", v)
		}
	}
}

func TestGenerateWaterDominance(t *testing.T) {
	cfg := smallConfig()
	out := NewGenerator().Generate(cfg, biome.Temperate)
	rm := out.WaterFeatures.RiverMask.Data()
	wm := out.WaterFeatures.WaterMask.Data()
	for i := range rm {
		if rm[i] > 0 && wm[i] <= 0 {
			t.Fatalf("riverMask(p)>0 but waterMask(p)<=0 at index %d", i)
		}
	}
}

func TestGenerateNonNegativeAfterErosion(t *testing.T) {
	cfg := smallConfig()
	out := NewGenerator().Generate(cfg, biome.Temperate)
	for _, v := range out.Atlas.Data() {
		if v < 0 {
			t.Fatalf("atlas height negative after erosion: %v", v)
		}
	}
}

func TestGenerateRectCoverage(t *testing.T) {
	cfg := smallConfig()
	out := NewGenerator().Generate(cfg, biome.Temperate)
	if len(out.Rects) != cfg.Rows {
		t.Fatalf("rects row count = %d, want %d", len(out.Rects), cfg.Rows)
	}
	for r := 0; r < cfg.Rows; r++ {
		if len(out.Rects[r]) != cfg.Cols {
			t.Fatalf("rects col count at row %d = %d, want %d", r, len(out.Rects[r]), cfg.Cols)
		}
	}
	// corners
	first := out.Rects[0][0]
	if first.U0 != 0 || first.V0 != 0 {
		t.Fatalf("first rect should start at origin, got %+v", first)
	}
	last := out.Rects[cfg.Rows-1][cfg.Cols-1]
	if last.U1 != 1 || last.V1 != 1 {
		t.Fatalf("last rect should end at (1,1), got %+v", last)
	}
}

func TestGenerateSingleTileGridBoundary(t *testing.T) {
	c := config.Default(1, 1, 96, 8, 7)
	c.BaseSize = 32
	c.Steps = 2
	out := NewGenerator().Generate(c, biome.Desert)
	if len(out.Rects) != 1 || len(out.Rects[0]) != 1 {
		t.Fatalf("expected exactly one rect for a 1x1 grid")
	}
	r := out.Rects[0][0]
	if r.U0 != 0 || r.V0 != 0 || r.U1 != 1 || r.V1 != 1 {
		t.Fatalf("1x1 rect should be (0,0,1,1), got %+v", r)
	}
}

// TestGenerateThresholdEdgeRiver exercises spec §8's threshold-edge river
// boundary. Normalized flow n=F/Fmax never exceeds 1, and the tributary
// band (spec §4.F: "n > 0.3t") only ever contributes when 0.3*threshold <
// 1 — so a threshold past 1/0.3 makes every branch unreachable and the
// mask is provably all zero, while the biome's own threshold (well under
// that bound) produces a non-empty mask on the same terrain.
func TestGenerateThresholdEdgeRiver(t *testing.T) {
	cfg := smallConfig()
	unreachableThreshold := biome.Merge(biome.Temperate, biome.Override{
		Water: &biome.Water{SeaLevel: 0.08, RiverThreshold: 4.0, RiverWidth: 3, RiverDepth: 0.025, CoastalErosion: 0.04, BeachWidth: 10},
	})
	out := NewGenerator().Generate(cfg, unreachableThreshold)
	for _, v := range out.WaterFeatures.RiverMask.Data() {
		if v != 0 {
			t.Fatalf("riverThreshold past 1/0.3 should yield an all-zero river mask, got %v", v)
		}
	}

	normal := NewGenerator().Generate(cfg, biome.Temperate)
	nonZero := false
	for _, v := range normal.WaterFeatures.RiverMask.Data() {
		if v > 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatalf("expected the biome's default river threshold to produce a non-empty river mask")
	}
}
