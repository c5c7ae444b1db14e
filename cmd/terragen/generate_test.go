package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteRawGridRoundTripsBitPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.raw32")
	data := []float32{1.5, -2.25, 0, float32(math.Pi)}

	if err := writeRawGrid(path, data); err != nil {
		t.Fatalf("writeRawGrid: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(raw) != len(data)*4 {
		t.Fatalf("wrote %d bytes, want %d", len(raw), len(data)*4)
	}

	for i, want := range data {
		bits := uint32(raw[i*4]) | uint32(raw[i*4+1])<<8 | uint32(raw[i*4+2])<<16 | uint32(raw[i*4+3])<<24
		got := math.Float32frombits(bits)
		if got != want {
			t.Errorf("value %d = %v, want %v", i, got, want)
		}
	}
}
