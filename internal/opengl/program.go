package opengl

import (
	"fmt"

	"github.com/ThatOtherAndrew/volumedemo/internal/shaders"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked shader program with a cache of uniform locations.
type Program struct {
	Name      string
	ID        uint32
	locations map[string]int32
}

func NewProgram(name, vertexSource, fragmentSource string) (*Program, error) {
	id, err := shaders.BuildProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%s program: %w", name, err)
	}
	return &Program{Name: name, ID: id, locations: make(map[string]int32)}, nil
}

func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
}

// Location looks up a uniform. A uniform the linker dropped or that was
// never declared is an error.
func (p *Program) Location(name string) (int32, error) {
	if loc, ok := p.locations[name]; ok {
		return loc, nil
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		return -1, fmt.Errorf("%s program: %w: %s", p.Name, ErrUniformNotFound, name)
	}
	p.locations[name] = loc
	return loc, nil
}

func (p *Program) SetMat4(name string, m mgl32.Mat4) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
	return nil
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	gl.Uniform3f(loc, v.X(), v.Y(), v.Z())
	return nil
}

func (p *Program) SetVec3Array(name string, vs []mgl32.Vec3) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	if len(vs) > 0 {
		gl.Uniform3fv(loc, int32(len(vs)), &vs[0][0])
	}
	return nil
}

func (p *Program) SetFloat(name string, v float32) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	gl.Uniform1f(loc, v)
	return nil
}

func (p *Program) SetInt(name string, v int32) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	gl.Uniform1i(loc, v)
	return nil
}

func (p *Program) SetUint(name string, v uint32) error {
	loc, err := p.Location(name)
	if err != nil {
		return err
	}
	gl.Uniform1ui(loc, v)
	return nil
}
