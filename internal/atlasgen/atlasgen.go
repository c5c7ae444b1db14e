// Package atlasgen implements tile extraction, atlas packing, and UV
// rectangle computation (spec §4.I, §3).
package atlasgen

import "terragen/internal/heightfield"

// Rect is a tile's normalized UV sub-rectangle within the atlas (spec §3):
// u0 = c*inner/atlasW, u1 = (c+1)*inner/atlasW, likewise for v.
type Rect struct {
	U0, V0, U1, V1 float64
}

// Output bundles the split tiles, the packed atlas, and the per-tile UV
// rectangles (spec §6's public `generate` return shape).
type Output struct {
	Tiles     [][]*heightfield.Grid // Tiles[r][c]
	InnerSize int
	Atlas     *heightfield.Grid
	Rects     [][]Rect // Rects[r][c], row-major per spec §6
}

// Build cuts rows*cols tiles of side (inner+2*overlap) out of the continuous
// canvas and packs their inner regions into one atlas (spec §4.I). canvas
// must be at least rows*inner+2*overlap by cols*inner+2*overlap, which is
// exactly what pipeline.Generate produces for matching parameters.
func Build(canvas *heightfield.Grid, rows, cols, inner, overlap int) Output {
	tileSize := inner + 2*overlap
	atlasW := cols * inner
	atlasH := rows * inner
	atlas := heightfield.NewRect(atlasW, atlasH, 0)

	tiles := make([][]*heightfield.Grid, rows)
	rects := make([][]Rect, rows)
	for r := 0; r < rows; r++ {
		tiles[r] = make([]*heightfield.Grid, cols)
		rects[r] = make([]Rect, cols)
		for c := 0; c < cols; c++ {
			tile := extractTile(canvas, r, c, inner, overlap, tileSize)
			tiles[r][c] = tile
			packInner(atlas, tile, r, c, inner, overlap)
			rects[r][c] = Rect{
				U0: float64(c*inner) / float64(atlasW),
				V0: float64(r*inner) / float64(atlasH),
				U1: float64((c+1)*inner) / float64(atlasW),
				V1: float64((r+1)*inner) / float64(atlasH),
			}
		}
	}

	return Output{Tiles: tiles, InnerSize: inner, Atlas: atlas, Rects: rects}
}

// extractTile copies the tileSize x tileSize block starting at
// (c*inner, r*inner) in canvas space, so the tile includes the overlap
// margin of its neighbors (spec §4.I step 1).
func extractTile(canvas *heightfield.Grid, r, c, inner, overlap, tileSize int) *heightfield.Grid {
	originX := c * inner
	originY := r * inner
	tile := heightfield.NewRect(tileSize, tileSize, 0)
	for y := 0; y < tileSize; y++ {
		for x := 0; x < tileSize; x++ {
			tile.Set(x, y, canvas.Get(originX+x, originY+y))
		}
	}
	return tile
}

// packInner writes tile's inner region ([overlap, overlap+inner)^2 in tile
// coordinates) into the atlas at (c*inner, r*inner) (spec §4.I steps 2-3).
func packInner(atlas, tile *heightfield.Grid, r, c, inner, overlap int) {
	destX := c * inner
	destY := r * inner
	for y := 0; y < inner; y++ {
		for x := 0; x < inner; x++ {
			atlas.Set(destX+x, destY+y, tile.Get(overlap+x, overlap+y))
		}
	}
}

// PackAtlas packs a canvas-space grid's inner regions into atlas layout
// without materializing intermediate tile objects, for the hydrology masks
// and flow accumulation — spec §3's "WaterFeatures: four float grids of
// atlas dimensions (same packing)" — which never need to be consumed as
// individually addressable tiles.
func PackAtlas(canvas *heightfield.Grid, rows, cols, inner, overlap int) *heightfield.Grid {
	atlas := heightfield.NewRect(cols*inner, rows*inner, 0)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			srcX := c*inner + overlap
			srcY := r*inner + overlap
			destX := c * inner
			destY := r * inner
			for y := 0; y < inner; y++ {
				for x := 0; x < inner; x++ {
					atlas.Set(destX+x, destY+y, canvas.Get(srcX+x, srcY+y))
				}
			}
		}
	}
	return atlas
}

// BlendSeams is the legacy opt-in seam-blend path (spec §4.I): it linearly
// blends each pair of column-adjacent tiles' inner edges across an
// overlap-pixel-wide border. It exists only for callers of the
// per-tile-then-blend pipeline variant, where independently generated
// tiles may disagree at their border; the default continuous-then-split
// pipeline never calls it, since blending would weaken the exact-equality
// continuity invariant the continuous path already guarantees by
// construction (spec §9, Design Notes).
func BlendSeams(atlas *heightfield.Grid, cols, inner, overlap int) {
	if overlap < 2 {
		return
	}
	src := atlas.Clone()
	h := atlas.Height
	for c := 0; c < cols-1; c++ {
		leftTileEnd := c*inner + inner
		rightTileStart := (c + 1) * inner
		for y := 0; y < h; y++ {
			for k := 0; k < overlap; k++ {
				wA := 1 - float64(k)/float64(overlap-1)
				wB := 1 - wA
				xA := leftTileEnd - overlap + k
				xB := rightTileStart + k
				a := float64(src.Get(xA, y))
				b := float64(src.Get(xB, y))
				blended := float32(a*wA + b*wB)
				atlas.Set(xA, y, blended)
				atlas.Set(xB, y, blended)
			}
		}
	}
}
