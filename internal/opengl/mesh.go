package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Mesh is an indexed triangle mesh with interleaved position, normal and
// texture coordinates.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

const vertexStride = 8 * 4

// unit plane in the xy plane facing +z
var (
	planeVertices = []float32{
		// position   normal     uv
		0, 0, 0, 0, 0, 1, 0, 0,
		1, 0, 0, 0, 0, 1, 1, 0,
		1, 1, 0, 0, 0, 1, 1, 1,
		0, 1, 0, 0, 0, 1, 0, 1,
	}
	planeIndices = []uint32{0, 1, 2, 0, 2, 3}
)

func NewPlane() *Mesh {
	return newMesh(planeVertices, planeIndices)
}

func newMesh(vertices []float32, indices []uint32) *Mesh {
	m := &Mesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, vertexStride, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	return m
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
