package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"terragen/internal/biome"
	"terragen/internal/config"
	"terragen/internal/terrain"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tile atlas and its water features",
	Long:  `Generate runs the full synthesis pipeline and writes the atlas and the hydrology and erosion masks to --output-dir as raw float32 planes. Per-tile UV rects are not written.`,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("rows", 2, "tile grid rows")
	generateCmd.Flags().Int("cols", 2, "tile grid cols")
	generateCmd.Flags().Int("tile-size", 512, "tile side in pixels, including overlap margin")
	generateCmd.Flags().Int("overlap", 32, "overlap margin in pixels on each tile edge")
	generateCmd.Flags().Int("base-size", 64, "pyramid base resolution")
	generateCmd.Flags().Int("steps", 0, "pyramid step count (0 = derive from log2 of atlas size)")
	generateCmd.Flags().Float64("world-scale", 1.0, "world units per canvas pixel, fed to the noise sampler")
	generateCmd.Flags().Int64("seed", 1337, "deterministic seed for noise and erosion")
	generateCmd.Flags().Bool("blend-seams", false, "blend tile-adjacent overlap borders after packing (legacy per-tile variant)")
	generateCmd.Flags().Float64("sea-level", 23, "sea level in meters")
	generateCmd.Flags().Float64("erosion-years", 2500, "simulated years of geological erosion")
	generateCmd.Flags().Float64("wind-strength", 1.0, "wind erosion process strength, 1.0 = full")
	generateCmd.Flags().Float64("rain-intensity", 1.0, "hydraulic erosion process strength, 1.0 = full")
	generateCmd.Flags().Float64("temperature-cycles", 1.0, "thermal erosion process strength, 1.0 = full")
	generateCmd.Flags().String("biome", "temperate", "biome preset (temperate, alpine, desert)")
	generateCmd.Flags().String("output-dir", "./out", "directory to write the atlas and masks into")

	bindFlags := []struct{ key, flag string }{
		{"generate.rows", "rows"},
		{"generate.cols", "cols"},
		{"generate.tile_size", "tile-size"},
		{"generate.overlap", "overlap"},
		{"generate.base_size", "base-size"},
		{"generate.steps", "steps"},
		{"generate.world_scale", "world-scale"},
		{"generate.seed", "seed"},
		{"generate.blend_seams", "blend-seams"},
		{"generate.sea_level", "sea-level"},
		{"generate.erosion_years", "erosion-years"},
		{"generate.wind_strength", "wind-strength"},
		{"generate.rain_intensity", "rain-intensity"},
		{"generate.temperature_cycles", "temperature-cycles"},
		{"generate.biome", "biome"},
		{"generate.output_dir", "output-dir"},
	}
	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, generateCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	biomeName := viper.GetString("generate.biome")
	b, ok := biome.Lookup(biomeName)
	if !ok {
		return fmt.Errorf("unknown biome %q", biomeName)
	}

	cfg := config.GenerateConfig{
		Rows: viper.GetInt("generate.rows"), Cols: viper.GetInt("generate.cols"),
		TileSize: viper.GetInt("generate.tile_size"), Overlap: viper.GetInt("generate.overlap"),
		BaseSize: viper.GetInt("generate.base_size"), Steps: viper.GetInt("generate.steps"),
		WorldScale: viper.GetFloat64("generate.world_scale"), Seed: viper.GetInt64("generate.seed"),
		BlendSeams:   viper.GetBool("generate.blend_seams"),
		SeaLevel:     viper.GetFloat64("generate.sea_level"),
		ErosionYears: viper.GetFloat64("generate.erosion_years"),

		WindStrength:      viper.GetFloat64("generate.wind_strength"),
		RainIntensity:     viper.GetFloat64("generate.rain_intensity"),
		TemperatureCycles: viper.GetFloat64("generate.temperature_cycles"),
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	outputDir := viper.GetString("generate.output_dir")
	logger.Info().Str("biome", biomeName).Int("rows", cfg.Rows).Int("cols", cfg.Cols).
		Int64("seed", cfg.Seed).Str("output_dir", outputDir).Msg("starting terrain generation")

	out := terrain.NewGenerator().Generate(cfg, b)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	if err := writeRawGrid(filepath.Join(outputDir, "atlas.raw32"), out.Atlas.Data()); err != nil {
		return fmt.Errorf("failed to write atlas: %w", err)
	}
	if wf := out.WaterFeatures; wf != nil {
		for name, g := range map[string]interface {
			Data() []float32
		}{
			"water_mask.raw32": wf.WaterMask,
			"river_mask.raw32": wf.RiverMask,
			"beach_mask.raw32": wf.BeachMask,
			"flow.raw32":       wf.FlowAccumulation,
			"erosion.raw32":    wf.ErosionMask,
		} {
			if err := writeRawGrid(filepath.Join(outputDir, name), g.Data()); err != nil {
				return fmt.Errorf("failed to write %s: %w", name, err)
			}
		}
	}

	logger.Info().Int("atlas_width", out.AtlasWidth).Int("atlas_height", out.AtlasHeight).
		Int("inner_size", out.InnerSize).Msg("terrain generation complete")

	return nil
}

// writeRawGrid dumps a row-major float32 plane as raw little-endian bytes;
// the renderer reads these directly into a texture buffer rather than
// round-tripping through an image codec (spec §6's output is the atlas
// grid itself, not a rendered image).
func writeRawGrid(path string, data []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, 4)
	for _, v := range data {
		bits := math.Float32bits(v)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		if _, err := f.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
