package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/gift"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/image/draw"

	"terragen/internal/biome"
	"terragen/internal/config"
	"terragen/internal/terrain"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a grayscale heightfield thumbnail of the atlas with water features tinted",
	Long: `Preview runs the same generation as "generate" and writes a gamma-corrected,
contrast-stretched PNG thumbnail of the atlas for a quick visual sanity check.
It never feeds back into the core grids; it is strictly a read-only view.`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().Int("rows", 2, "tile grid rows")
	previewCmd.Flags().Int("cols", 2, "tile grid cols")
	previewCmd.Flags().Int("tile-size", 512, "tile side in pixels, including overlap margin")
	previewCmd.Flags().Int("overlap", 32, "overlap margin in pixels on each tile edge")
	previewCmd.Flags().Int64("seed", 1337, "deterministic seed for noise and erosion")
	previewCmd.Flags().String("biome", "temperate", "biome preset (temperate, alpine, desert)")
	previewCmd.Flags().Int("thumb-width", 512, "thumbnail width in pixels")
	previewCmd.Flags().Float32("contrast", 15, "gift contrast adjustment, percent")
	previewCmd.Flags().Float32("gamma", 1.1, "gift gamma correction")
	previewCmd.Flags().String("out", "preview.png", "output PNG path")

	bindFlags := []struct{ key, flag string }{
		{"preview.rows", "rows"},
		{"preview.cols", "cols"},
		{"preview.tile_size", "tile-size"},
		{"preview.overlap", "overlap"},
		{"preview.seed", "seed"},
		{"preview.biome", "biome"},
		{"preview.thumb_width", "thumb-width"},
		{"preview.contrast", "contrast"},
		{"preview.gamma", "gamma"},
		{"preview.out", "out"},
	}
	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, previewCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	biomeName := viper.GetString("preview.biome")
	b, ok := biome.Lookup(biomeName)
	if !ok {
		return fmt.Errorf("unknown biome %q", biomeName)
	}

	cfg := config.Default(
		viper.GetInt("preview.rows"), viper.GetInt("preview.cols"),
		viper.GetInt("preview.tile_size"), viper.GetInt("preview.overlap"),
		viper.GetInt64("preview.seed"),
	)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger.Info().Str("biome", biomeName).Msg("rendering preview thumbnail")

	out := terrain.NewGenerator().Generate(cfg, b)
	base := heightfieldToGray(out.Atlas.Data(), out.AtlasWidth, out.AtlasHeight)
	tinted := overlayWaterFeatures(base, out.WaterFeatures)

	contrast := float32(viper.GetFloat64("preview.contrast"))
	gamma := float32(viper.GetFloat64("preview.gamma"))
	filter := gift.New(gift.Contrast(contrast), gift.Gamma(gamma))
	adjusted := image.NewRGBA(filter.Bounds(tinted.Bounds()))
	filter.Draw(adjusted, tinted)

	thumbWidth := viper.GetInt("preview.thumb_width")
	thumb := resizeToWidth(adjusted, thumbWidth)

	outPath := viper.GetString("preview.out")
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, thumb); err != nil {
		return fmt.Errorf("failed to encode preview PNG: %w", err)
	}

	logger.Info().Str("path", outPath).Int("width", thumb.Bounds().Dx()).Int("height", thumb.Bounds().Dy()).
		Msg("preview written")

	return nil
}

// heightfieldToGray normalizes a row-major float32 plane to 8-bit grayscale
// by its own observed min/max range, since raw terrain heights are
// unbounded relative to the [0,255] pixel domain.
func heightfieldToGray(data []float32, width, height int) *image.Gray {
	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo
	if span <= 0 {
		span = 1
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := data[y*width+x]
			norm := (v - lo) / span
			img.SetGray(x, y, color.Gray{Y: uint8(norm * 255)})
		}
	}
	return img
}

// resizeToWidth scales src down to targetWidth (preserving aspect ratio)
// using x/image/draw's CatmullRom resampler, a sharper-than-bilinear kernel
// appropriate for a one-shot debug thumbnail (the core's own
// heightfield.ResampleToRect stays a plain bilinear tensor formula, since it
// must be bit-reproducible rather than merely good-looking).
func resizeToWidth(src *image.RGBA, targetWidth int) *image.RGBA {
	b := src.Bounds()
	if targetWidth <= 0 || targetWidth >= b.Dx() {
		return src
	}
	targetHeight := b.Dy() * targetWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

// waterTint, riverTint, and beachTint are the overlay colors blended onto
// the grayscale height base wherever the corresponding mask is nonzero,
// each mask's own value used as the blend weight.
var (
	waterTint = color.RGBA{R: 40, G: 90, B: 190, A: 255}
	riverTint = color.RGBA{R: 60, G: 130, B: 220, A: 255}
	beachTint = color.RGBA{R: 225, G: 205, B: 150, A: 255}
)

// overlayWaterFeatures promotes the grayscale height base to RGBA and
// blends in the water/river/beach masks as color tints, river drawn last
// so it stays visible inside the (usually larger) water mask region.
func overlayWaterFeatures(base *image.Gray, wf *terrain.WaterFeatures) *image.RGBA {
	b := base.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, base, b.Min, draw.Src)
	if wf == nil {
		return out
	}

	blendMask(out, wf.WaterMask, waterTint)
	blendMask(out, wf.BeachMask, beachTint)
	blendMask(out, wf.RiverMask, riverTint)
	return out
}

func blendMask(dst *image.RGBA, mask interface {
	Get(x, y int) float32
}, tint color.RGBA) {
	if mask == nil {
		return
	}
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			w := float64(mask.Get(x-b.Min.X, y-b.Min.Y))
			if w <= 0 {
				continue
			}
			if w > 1 {
				w = 1
			}
			base := dst.RGBAAt(x, y)
			dst.SetRGBA(x, y, color.RGBA{
				R: blendChannel(base.R, tint.R, w),
				G: blendChannel(base.G, tint.G, w),
				B: blendChannel(base.B, tint.B, w),
				A: 255,
			})
		}
	}
}

func blendChannel(base, tint uint8, w float64) uint8 {
	return uint8(float64(base)*(1-w) + float64(tint)*w)
}
