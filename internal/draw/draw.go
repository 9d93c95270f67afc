package draw

import (
	"fmt"

	"github.com/ThatOtherAndrew/volumedemo/internal/models"
	"github.com/ThatOtherAndrew/volumedemo/internal/opengl"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Renderer struct {
	scene *opengl.Scene
}

func New(scene *opengl.Scene) *Renderer {
	return &Renderer{scene: scene}
}

// Draw renders one frame: the view plane first, then the ground.
func (r *Renderer) Draw(snapshot models.Snapshot) error {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if err := r.drawPass(r.scene.View, r.scene.ViewPlane, snapshot); err != nil {
		return fmt.Errorf("draw view plane: %w", err)
	}
	if err := r.drawPass(r.scene.Ground, r.scene.GroundPlane, snapshot); err != nil {
		return fmt.Errorf("draw ground: %w", err)
	}

	return opengl.CheckError("rendering")
}

func (r *Renderer) drawPass(program *opengl.Program, mesh *opengl.Mesh, snapshot models.Snapshot) error {
	program.Use()
	defer gl.UseProgram(0)

	if err := program.SetUint("u_shadingMode", snapshot.RenderMode); err != nil {
		return err
	}
	if err := program.SetFloat("u_animation", snapshot.Clock); err != nil {
		return err
	}
	if err := program.SetUint("u_noise", uint32(snapshot.Noise)); err != nil {
		return err
	}
	if err := program.SetInt("u_objectCnt", int32(snapshot.Count)); err != nil {
		return err
	}
	if err := program.SetVec3Array("u_objectPos", snapshot.Positions); err != nil {
		return err
	}
	if err := program.SetVec3Array("u_objectColor", snapshot.Colors); err != nil {
		return err
	}

	mesh.Draw()
	return nil
}
