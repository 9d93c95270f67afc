package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// NoiseTextureUnit is the texture unit the fragment shaders sample noise from.
const NoiseTextureUnit = 0

// NewNoiseTexture uploads a square RGBA bitmap to NoiseTextureUnit.
func NewNoiseTexture(size int, pixels []byte) (uint32, error) {
	if len(pixels) != size*size*4 {
		return 0, fmt.Errorf("noise bitmap is %d bytes, want %d", len(pixels), size*size*4)
	}

	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0 + NoiseTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.MIRRORED_REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size), int32(size), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	return texture, CheckError("noise texture upload")
}
