package atlasgen

import (
	"math"
	"testing"

	"terragen/internal/heightfield"
)

func syntheticCanvas(w, h int) *heightfield.Grid {
	g := heightfield.NewRect(w, h, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, float32(math.Sin(float64(x)*0.05)+math.Cos(float64(y)*0.07)))
		}
	}
	return g
}

func TestBuildSingleTileAtlasEqualsInnerRegion(t *testing.T) {
	const inner, overlap = 64, 8
	canvas := syntheticCanvas(inner+2*overlap, inner+2*overlap)
	out := Build(canvas, 1, 1, inner, overlap)

	if out.Atlas.Width != inner || out.Atlas.Height != inner {
		t.Fatalf("atlas size = %dx%d, want %dx%d", out.Atlas.Width, out.Atlas.Height, inner, inner)
	}
	for y := 0; y < inner; y++ {
		for x := 0; x < inner; x++ {
			want := canvas.Get(overlap+x, overlap+y)
			got := out.Atlas.Get(x, y)
			if got != want {
				t.Fatalf("atlas(%d,%d) = %v, want %v (canvas inner region)", x, y, got, want)
			}
		}
	}
	if len(out.Rects) != 1 || len(out.Rects[0]) != 1 {
		t.Fatalf("expected exactly one rect for a 1x1 grid")
	}
	r := out.Rects[0][0]
	if r != (Rect{0, 0, 1, 1}) {
		t.Fatalf("1x1 rect = %+v, want (0,0,1,1)", r)
	}
}

func TestTileContinuityAcrossSharedSeam(t *testing.T) {
	const inner, overlap, rows, cols = 48, 6, 1, 2
	w := cols*inner + 2*overlap
	h := rows*inner + 2*overlap
	canvas := syntheticCanvas(w, h)
	out := Build(canvas, rows, cols, inner, overlap)

	tileSize := inner + 2*overlap
	// Right-inner edge of tile (0,0) is tile-local column overlap+inner-1,
	// canvas column overlap+inner-1. Tile (0,1) starts at canvas column
	// inner, so the same canvas column is its left-margin column overlap-1.
	// Both read the same canvas cell, so they must be bit-equal.
	for y := 0; y < tileSize; y++ {
		right := out.Tiles[0][0].Get(overlap+inner-1, y)
		left := out.Tiles[0][1].Get(overlap-1, y)
		if right != left {
			t.Fatalf("tile seam mismatch at row %d: right=%v left=%v", y, right, left)
		}
	}
}

func TestRectsCoverAtlasExactlyWithNoOverlap(t *testing.T) {
	const inner, overlap, rows, cols = 32, 4, 2, 3
	w := cols*inner + 2*overlap
	h := rows*inner + 2*overlap
	canvas := syntheticCanvas(w, h)
	out := Build(canvas, rows, cols, inner, overlap)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			want := Rect{
				U0: float64(c) / float64(cols), V0: float64(r) / float64(rows),
				U1: float64(c+1) / float64(cols), V1: float64(r+1) / float64(rows),
			}
			got := out.Rects[r][c]
			const eps = 1e-9
			if math.Abs(got.U0-want.U0) > eps || math.Abs(got.V0-want.V0) > eps ||
				math.Abs(got.U1-want.U1) > eps || math.Abs(got.V1-want.V1) > eps {
				t.Fatalf("rect[%d][%d] = %+v, want %+v", r, c, got, want)
			}
		}
	}
}

func TestAtlasSizeMatchesRowsCols(t *testing.T) {
	const inner, overlap, rows, cols = 40, 5, 2, 2
	w := cols*inner + 2*overlap
	h := rows*inner + 2*overlap
	canvas := syntheticCanvas(w, h)
	out := Build(canvas, rows, cols, inner, overlap)
	if out.Atlas.Width != cols*inner || out.Atlas.Height != rows*inner {
		t.Fatalf("atlas size = %dx%d, want %dx%d", out.Atlas.Width, out.Atlas.Height, cols*inner, rows*inner)
	}
}
