package shaders

import _ "embed"

var (
	//go:embed glsl/vertex.glsl
	Vertex string

	//go:embed glsl/fragment_head.glsl
	FragmentHead string

	//go:embed glsl/volume_body.glsl
	VolumeBody string

	//go:embed glsl/ground_body.glsl
	GroundBody string
)

// VolumeFragment and GroundFragment share the uniform block and helpers in
// FragmentHead.
func VolumeFragment() string {
	return FragmentHead + VolumeBody
}

func GroundFragment() string {
	return FragmentHead + GroundBody
}
