package pipeline

import (
	"testing"

	"terragen/internal/biome"
)

func testConfig() Config {
	return Config{
		Rows: 2, Cols: 2,
		Inner: 64, Overlap: 8,
		BaseSize: 32, Steps: 3,
		WorldScale: 4.0,
		Seed:       1337,
	}
}

func TestGenerateProducesFinalCanvasSize(t *testing.T) {
	cfg := testConfig()
	g := Generate(cfg, biome.Temperate)
	wantW, wantH := cfg.FinalSize()
	if g.Width != wantW || g.Height != wantH {
		t.Fatalf("Generate canvas size = %dx%d, want %dx%d", g.Width, g.Height, wantW, wantH)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := testConfig()
	a := Generate(cfg, biome.Temperate)
	b := Generate(cfg, biome.Temperate)
	if len(a.Data()) != len(b.Data()) {
		t.Fatalf("output length differs: %d vs %d", len(a.Data()), len(b.Data()))
	}
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("Generate is not deterministic at index %d: %v vs %v", i, a.Data()[i], b.Data()[i])
		}
	}
}

func TestGenerateDifferentSeedsDiverge(t *testing.T) {
	cfg := testConfig()
	a := Generate(cfg, biome.Temperate)
	cfg2 := cfg
	cfg2.Seed = 7331
	b := Generate(cfg2, biome.Temperate)

	diff := false
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Fatalf("expected different seeds to produce different terrain")
	}
}

func TestLevelSizeSnapsLastStepToFinal(t *testing.T) {
	cfg := testConfig()
	finalW, finalH := cfg.FinalSize()
	w, h := levelSize(cfg, finalW, finalH, cfg.Steps-1)
	if w != finalW || h != finalH {
		t.Fatalf("last pyramid level = %dx%d, want final size %dx%d", w, h, finalW, finalH)
	}
}

func TestGenerateWithDesertReachesDuneResolution(t *testing.T) {
	cfg := Config{
		Rows: 1, Cols: 1,
		Inner: 256, Overlap: 16,
		BaseSize: 64, Steps: 3,
		WorldScale: 2.0,
		Seed:       99,
	}
	g := Generate(cfg, biome.Desert)
	if g.Width < 256 || g.Height < 256 {
		t.Fatalf("expected a canvas large enough to trigger dunes, got %dx%d", g.Width, g.Height)
	}
}
