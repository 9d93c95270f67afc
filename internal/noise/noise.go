// Package noise generates the greyscale Perlin texture sampled by the
// fragment shaders.
package noise

import (
	"github.com/aquilax/go-perlin"
)

const (
	DefaultSize  = 256
	DefaultScale = 6.5
	DefaultSeed  = 1

	alpha   = 2.0
	beta    = 2.0
	octaves = 3
)

// Bitmap returns size*size RGBA pixels, row by row. All four channels of a
// pixel carry the same value.
func Bitmap(size int, scale float64, seed int64) []byte {
	if size <= 0 {
		return nil
	}
	p := perlin.NewPerlin(alpha, beta, octaves, seed)
	out := make([]byte, size*size*4)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := p.Noise2D(float64(x)/float64(size)*scale, float64(y)/float64(size)*scale)
			b := quantize(v)
			i := (y*size + x) * 4
			out[i], out[i+1], out[i+2], out[i+3] = b, b, b, b
		}
	}
	return out
}

// quantize maps noise in [-1, 1] onto a byte.
func quantize(v float64) byte {
	n := (v + 1) * 0.5
	n = max(0, min(1, n))
	return byte(n * 255.9)
}
