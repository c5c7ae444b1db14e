package noise

import (
	"testing"
)

func TestValue2DRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.37
		y := float64(i) * 1.91
		v := Value2D(x, y)
		if v < 0 || v > 1 {
			t.Fatalf("Value2D(%v,%v) = %v, want [0,1]", x, y, v)
		}
	}
}

func TestValue2DDeterministic(t *testing.T) {
	first := Value2D(12.345, -6.78)
	for i := 0; i < 50; i++ {
		if got := Value2D(12.345, -6.78); got != first {
			t.Fatalf("Value2D not deterministic: got %v want %v", got, first)
		}
	}
}

func TestValue2DRoundingAvoidsSeamDrift(t *testing.T) {
	// Two coordinates that differ only by float error below the 1e-6
	// rounding threshold must hash identically, as required by spec §4.B.
	a := Value2D(3.0000000001, 4.0)
	b := Value2D(3.0, 4.0)
	if a != b {
		t.Fatalf("sub-epsilon coordinate drift changed the hash: %v vs %v", a, b)
	}
}

func TestFBMDeterministic(t *testing.T) {
	cfg := Config{Amplitude: 1, Frequency: 1.5, Octaves: 4, Lacunarity: 2, Gain: 0.5, Warp: 0.1}
	f := NewFBM(cfg, 7)
	first := f.Sample(1.23, 4.56)
	for i := 0; i < 20; i++ {
		if got := f.Sample(1.23, 4.56); got != first {
			t.Fatalf("FBM.Sample not deterministic: got %v want %v", got, first)
		}
	}
}

func TestWorldUVSharedSeam(t *testing.T) {
	inner := 480
	worldScale := 1.0
	// Right edge of tile (0,0) is xInner=inner-1; left edge of tile (0,1)
	// is xInner=0. They must map to the same world coordinate.
	uRight, vRight := WorldUV(0, 0, inner-1, 10, inner, worldScale)
	uLeft, vLeft := WorldUV(0, 1, 0, 10, inner, worldScale)
	if uRight != uLeft || vRight != vLeft {
		t.Fatalf("adjacent tile seam does not share world coordinates: (%v,%v) vs (%v,%v)", uRight, vRight, uLeft, vLeft)
	}
}

func TestPerlinSourceRangeIsRescaled(t *testing.T) {
	src := NewPerlinSource(42)
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.13
		v := src.Sample2D(x, x*0.5)
		if v < -0.01 || v > 1.01 {
			t.Fatalf("PerlinSource.Sample2D(%v) = %v, want approx [0,1]", x, v)
		}
	}
}

func TestSelectSourceDefaultsToHash(t *testing.T) {
	s := SelectSource(BackendHash, 1)
	if _, ok := s.(HashSource); !ok {
		t.Fatalf("SelectSource(BackendHash) returned %T, want HashSource", s)
	}
}
