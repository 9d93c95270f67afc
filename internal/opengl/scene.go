package opengl

import (
	"fmt"

	"github.com/ThatOtherAndrew/volumedemo/internal/noise"
	"github.com/ThatOtherAndrew/volumedemo/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// Camera and plane placement.
var (
	CameraPosition = mgl32.Vec3{0, 0, 2}

	viewPlaneModel   = mgl32.Translate3D(-2, -0.75, 0).Mul4(mgl32.Scale3D(4, 2, 2))
	groundPlaneModel = mgl32.Translate3D(-3, -1.5, -2).
		Mul4(mgl32.Scale3D(10, 2, 2)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(90)))
)

const (
	fieldOfView = 1.0
	nearPlane   = 0.1
	farPlane    = 5.0
)

type NoiseOptions struct {
	Size  int
	Scale float64
	Seed  int64
}

// Scene holds every GPU resource the renderer draws with. The view plane
// ray-marches the objects; the ground plane catches their glow.
type Scene struct {
	View   *Program
	Ground *Program

	ViewPlane   *Mesh
	GroundPlane *Mesh

	NoiseTexture uint32
}

// BuildScene creates the programs, meshes and noise texture and uploads the
// uniforms that never change.
func BuildScene(width, height int, opts NoiseOptions, log *zap.Logger) (*Scene, error) {
	s := &Scene{}

	var err error
	if s.View, err = NewProgram("view", shaders.Vertex, shaders.VolumeFragment()); err != nil {
		return nil, err
	}
	if s.Ground, err = NewProgram("ground", shaders.Vertex, shaders.GroundFragment()); err != nil {
		s.Close()
		return nil, err
	}
	if err := CheckError("shader creation"); err != nil {
		s.Close()
		return nil, err
	}

	s.ViewPlane = NewPlane()
	s.GroundPlane = NewPlane()
	if err := CheckError("geometry creation"); err != nil {
		s.Close()
		return nil, err
	}

	pixels := noise.Bitmap(opts.Size, opts.Scale, opts.Seed)
	if s.NoiseTexture, err = NewNoiseTexture(opts.Size, pixels); err != nil {
		s.Close()
		return nil, fmt.Errorf("create noise texture: %w", err)
	}

	if err := s.uploadStatic(width, height); err != nil {
		s.Close()
		return nil, err
	}

	log.Info("scene setup done",
		zap.Int("noise_size", opts.Size),
		zap.Float64("noise_scale", opts.Scale),
	)
	return s, nil
}

func Projection(width, height int) mgl32.Mat4 {
	return mgl32.Perspective(fieldOfView, float32(width)/float32(height), nearPlane, farPlane)
}

func ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(CameraPosition, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

func (s *Scene) uploadStatic(width, height int) error {
	viewProjection := Projection(width, height).Mul4(ViewMatrix())

	passes := []struct {
		program *Program
		model   mgl32.Mat4
	}{
		{s.View, viewPlaneModel},
		{s.Ground, groundPlaneModel},
	}
	for _, pass := range passes {
		pass.program.Use()
		if err := pass.program.SetMat4("u_mvp", viewProjection.Mul4(pass.model)); err != nil {
			return err
		}
		if err := pass.program.SetMat4("u_modelMatrix", pass.model); err != nil {
			return err
		}
		if err := pass.program.SetVec3("u_camPos", CameraPosition); err != nil {
			return err
		}
		if err := pass.program.SetInt("u_noiseTexture", NoiseTextureUnit); err != nil {
			return err
		}
	}
	gl.UseProgram(0)

	return CheckError("static uniform upload")
}

// Close releases GPU resources. It is safe on a partly built scene.
func (s *Scene) Close() {
	if s.NoiseTexture != 0 {
		gl.DeleteTextures(1, &s.NoiseTexture)
		s.NoiseTexture = 0
	}
	if s.ViewPlane != nil {
		s.ViewPlane.Delete()
		s.ViewPlane = nil
	}
	if s.GroundPlane != nil {
		s.GroundPlane.Delete()
		s.GroundPlane = nil
	}
	if s.View != nil {
		s.View.Delete()
		s.View = nil
	}
	if s.Ground != nil {
		s.Ground.Delete()
		s.Ground = nil
	}
}
