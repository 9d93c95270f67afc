package noise

import (
	"bytes"
	"testing"
)

func TestBitmapShape(t *testing.T) {
	for _, size := range []int{1, 16, DefaultSize} {
		if got := len(Bitmap(size, DefaultScale, DefaultSeed)); got != size*size*4 {
			t.Errorf("size %d: len = %d, want %d", size, got, size*size*4)
		}
	}
	if Bitmap(0, DefaultScale, DefaultSeed) != nil {
		t.Error("empty size should yield no pixels")
	}
}

func TestBitmapGreyscale(t *testing.T) {
	bm := Bitmap(32, DefaultScale, DefaultSeed)
	for i := 0; i < len(bm); i += 4 {
		if bm[i] != bm[i+1] || bm[i] != bm[i+2] || bm[i] != bm[i+3] {
			t.Fatalf("pixel %d not uniform: %v", i/4, bm[i:i+4])
		}
	}
}

func TestBitmapDeterministic(t *testing.T) {
	a := Bitmap(64, DefaultScale, 7)
	b := Bitmap(64, DefaultScale, 7)
	if !bytes.Equal(a, b) {
		t.Error("same seed produced different bitmaps")
	}
}

func TestBitmapVaries(t *testing.T) {
	bm := Bitmap(64, DefaultScale, DefaultSeed)
	lo, hi := bm[0], bm[0]
	for i := 0; i < len(bm); i += 4 {
		lo, hi = min(lo, bm[i]), max(hi, bm[i])
	}
	if hi-lo < 16 {
		t.Errorf("noise range too flat: [%d, %d]", lo, hi)
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		in   float64
		want byte
	}{
		{-1, 0},
		{-5, 0},
		{0, 127},
		{1, 255},
		{3, 255},
	}
	for _, tt := range tests {
		if got := quantize(tt.in); got != tt.want {
			t.Errorf("quantize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
