package heightfield

import "testing"

func TestGetClampsToEdge(t *testing.T) {
	g := New(4, 0)
	g.Set(0, 0, 1.5)
	g.Set(3, 3, 9.5)

	if got := g.Get(-5, -5); got != 1.5 {
		t.Errorf("Get(-5,-5) = %v, want 1.5 (clamp to corner)", got)
	}
	if got := g.Get(100, 100); got != 9.5 {
		t.Errorf("Get(100,100) = %v, want 9.5 (clamp to corner)", got)
	}
}

func TestResampleIdempotentWhenSizeUnchanged(t *testing.T) {
	g := New(8, 0)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			g.Set(x, y, float32(x+y*8))
		}
	}
	out := g.ResampleTo(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if out.Get(x, y) != g.Get(x, y) {
				t.Fatalf("ResampleTo(Size) changed value at (%d,%d): got %v want %v", x, y, out.Get(x, y), g.Get(x, y))
			}
		}
	}
}

func TestResampleUpThenDownRecoversCorners(t *testing.T) {
	g := New(4, 0)
	g.Set(0, 0, 0)
	g.Set(3, 0, 10)
	g.Set(0, 3, 20)
	g.Set(3, 3, 30)

	up := g.ResampleTo(16)
	down := up.ResampleTo(4)

	if down.Get(0, 0) != g.Get(0, 0) || down.Get(3, 3) != g.Get(3, 3) {
		t.Errorf("corner values not recovered after up/downsample: got (%v,%v) want (%v,%v)",
			down.Get(0, 0), down.Get(3, 3), g.Get(0, 0), g.Get(3, 3))
	}
}

func TestResampleConstantGridStaysConstant(t *testing.T) {
	g := New(5, 7)
	out := g.ResampleTo(13)
	for _, v := range out.Data() {
		if v != 7 {
			t.Fatalf("constant grid resample produced %v, want 7", v)
		}
	}
}

func TestResampleToOne(t *testing.T) {
	g := New(4, 3)
	out := g.ResampleTo(1)
	if out.Size() != 1 {
		t.Fatalf("expected size 1, got %d", out.Size())
	}
	if out.Get(0, 0) != 3 {
		t.Fatalf("expected 3, got %v", out.Get(0, 0))
	}
}

func TestCloneIndependence(t *testing.T) {
	g := New(3, 1)
	c := g.Clone()
	c.Set(0, 0, 99)
	if g.Get(0, 0) == 99 {
		t.Fatalf("Clone shares backing storage with source")
	}
}
