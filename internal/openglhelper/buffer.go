// Package openglhelper wraps the OpenGL and GLFW calls used by the flycam
// viewer in a small Go-friendly API.
package openglhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// BufferUsage represents the usage hint passed to glBufferData
type BufferUsage uint32

const (
	// StaticDraw: specified once, drawn many times
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw: respecified often, drawn many times
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
)

// BufferObject represents an OpenGL buffer object (VBO, EBO, ...)
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER, GL_ELEMENT_ARRAY_BUFFER, ...
	Size  int    // Size in bytes
	Usage BufferUsage
}

// NewBufferObject creates a buffer and uploads sizeInBytes bytes from data
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: usage,
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates a vertex buffer from interleaved float data
func NewVBO(vertices []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)
}

// NewEBO creates an element buffer from indices
func NewEBO(indices []uint32) *BufferObject {
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), StaticDraw)
}

// NewVec3Buffer creates a vertex buffer holding one vec3 per element,
// typically per-instance offsets.
func NewVec3Buffer(values []mgl32.Vec3, usage BufferUsage) *BufferObject {
	if len(values) == 0 {
		return NewBufferObject(gl.ARRAY_BUFFER, 0, nil, usage)
	}
	return NewBufferObject(gl.ARRAY_BUFFER, len(values)*3*4, gl.Ptr(&values[0][0]), usage)
}

// Bind binds the buffer object to its type target
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// Delete releases the buffer object
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
}

// VertexArrayObject stores vertex attribute configuration
type VertexArrayObject struct {
	ID uint32
}

// NewVAO creates a new vertex array object
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)
	return &VertexArrayObject{ID: vaoID}
}

// Bind binds the vertex array object
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
}

// SetVertexAttribPointer describes float attribute index in the currently bound
// array buffer and enables it. Offsets and strides are in bytes.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}

// SetInstanced makes attribute index advance once per instance instead of per vertex
func (vao *VertexArrayObject) SetInstanced(index uint32) {
	gl.VertexAttribDivisor(index, 1)
}
