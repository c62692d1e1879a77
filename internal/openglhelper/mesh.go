package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex attribute locations shared with the viewer shaders
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribOffset   = 2
)

// floats per vertex: position (3) + normal (3)
const vertexStride = 6

// Mesh is an indexed mesh that can be drawn once or instanced at a set of offsets
type Mesh struct {
	vao        *VertexArrayObject
	vbo        *BufferObject
	ebo        *BufferObject
	instances  *BufferObject
	indexCount int32
	instCount  int32
	mode       uint32
}

// NewMesh uploads interleaved position/normal vertices and indices.
// mode is the primitive type, e.g. gl.TRIANGLES or gl.LINES.
func NewMesh(vertices []float32, indices []uint32, mode uint32) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices)

	vao.SetVertexAttribPointer(AttribPosition, 3, vertexStride*4, 0)
	vao.SetVertexAttribPointer(AttribNormal, 3, vertexStride*4, 3*4)

	// single instance at the origin until SetInstances is called
	instances := NewVec3Buffer([]mgl32.Vec3{{0, 0, 0}}, DynamicDraw)
	vao.SetVertexAttribPointer(AttribOffset, 3, 3*4, 0)
	vao.SetInstanced(AttribOffset)

	vao.Unbind()

	return &Mesh{
		vao:        vao,
		vbo:        vbo,
		ebo:        ebo,
		instances:  instances,
		indexCount: int32(len(indices)),
		instCount:  1,
		mode:       mode,
	}
}

// SetInstances replaces the per-instance offsets
func (m *Mesh) SetInstances(offsets []mgl32.Vec3) {
	m.instances.Delete()

	m.vao.Bind()
	m.instances = NewVec3Buffer(offsets, DynamicDraw)
	m.vao.SetVertexAttribPointer(AttribOffset, 3, 3*4, 0)
	m.vao.SetInstanced(AttribOffset)
	m.vao.Unbind()

	m.instCount = int32(len(offsets))
}

// Draw renders every instance with the currently bound shader
func (m *Mesh) Draw() {
	if m.instCount == 0 {
		return
	}
	m.vao.Bind()
	gl.DrawElementsInstanced(m.mode, m.indexCount, gl.UNSIGNED_INT, nil, m.instCount)
	m.vao.Unbind()
}

// Delete releases all GPU resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	m.instances.Delete()
}

// NewCube creates a cube mesh of the given edge length centred on the origin
func NewCube(size float32) *Mesh {
	h := size / 2
	faces := []struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
	}

	vertices := make([]float32, 0, 6*4*vertexStride)
	indices := make([]uint32, 0, 6*6)
	for i, f := range faces {
		for _, c := range f.corners {
			vertices = append(vertices, c[0], c[1], c[2], f.normal[0], f.normal[1], f.normal[2])
		}
		base := uint32(i * 4)
		// counter-clockwise when viewed from outside
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return NewMesh(vertices, indices, gl.TRIANGLES)
}

// NewGrid creates a square line grid on the XZ plane spanning ±extent with
// a line every step units.
func NewGrid(extent, step float32) *Mesh {
	var vertices []float32
	var indices []uint32
	line := func(a, b mgl32.Vec3) {
		base := uint32(len(vertices) / vertexStride)
		vertices = append(vertices,
			a[0], a[1], a[2], 0, 1, 0,
			b[0], b[1], b[2], 0, 1, 0,
		)
		indices = append(indices, base, base+1)
	}

	for v := -extent; v <= extent; v += step {
		line(mgl32.Vec3{v, 0, -extent}, mgl32.Vec3{v, 0, extent})
		line(mgl32.Vec3{-extent, 0, v}, mgl32.Vec3{extent, 0, v})
	}

	return NewMesh(vertices, indices, gl.LINES)
}
