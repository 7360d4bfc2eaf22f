// Package render draws uploaded chunk meshes through OpenGL and provides a
// null backend for running the engine without a GPU.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"cubeworld/internal/engine"
	"cubeworld/internal/mesh"
	"cubeworld/internal/world"
)

// floatsPerVertex is position plus color, both vec3.
const floatsPerVertex = 6

// GLBackend uploads chunk meshes into vertex array objects and draws them
// with a single color shader. All methods require a current GL context on
// the calling thread.
type GLBackend struct {
	program       uint32
	projectionLoc int32
	viewLoc       int32
}

// NewGLBackend initializes OpenGL state for terrain rendering. The GLFW
// context must already be current.
func NewGLBackend() (*GLBackend, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	program, err := newProgram()
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.53, 0.74, 0.95, 1.0)

	return &GLBackend{
		program:       program,
		projectionLoc: gl.GetUniformLocation(program, gl.Str("projection\x00")),
		viewLoc:       gl.GetUniformLocation(program, gl.Str("view\x00")),
	}, nil
}

type vertexBuffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

func (b *vertexBuffer) Destroy() {
	gl.DeleteBuffers(1, &b.vbo)
	gl.DeleteVertexArrays(1, &b.vao)
}

type indexBuffer struct {
	ebo uint32
}

func (b *indexBuffer) Destroy() {
	gl.DeleteBuffers(1, &b.ebo)
}

// CreateVertexBuffer interleaves vertex positions and colors into one VBO
// and records the attribute layout in a VAO.
func (g *GLBackend) CreateVertexBuffer(vertices []mesh.Vertex) engine.Buffer {
	data := make([]float32, 0, len(vertices)*floatsPerVertex)
	for _, v := range vertices {
		data = append(data,
			v.Position.X(), v.Position.Y(), v.Position.Z(),
			v.Color.X(), v.Color.Y(), v.Color.Z(),
		)
	}

	buf := &vertexBuffer{count: int32(len(vertices))}
	gl.GenVertexArrays(1, &buf.vao)
	gl.BindVertexArray(buf.vao)

	gl.GenBuffers(1, &buf.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, floatsPerVertex*4, uintptr(3*4))
	gl.EnableVertexAttribArray(1)

	return buf
}

// CreateIndexBuffer uploads triangle indices. The element buffer binds into
// whichever VAO is current, so this must run right after CreateVertexBuffer.
func (g *GLBackend) CreateIndexBuffer(indices []uint32) engine.Buffer {
	buf := &indexBuffer{}
	gl.GenBuffers(1, &buf.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buf.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	return buf
}

// Draw clears the frame and renders every drawable chunk with the given
// camera matrices.
func (g *GLBackend) Draw(projection, view mgl32.Mat4, drawables map[world.ChunkID]*engine.DrawableChunk) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(g.program)
	gl.UniformMatrix4fv(g.projectionLoc, 1, false, &projection[0])
	gl.UniformMatrix4fv(g.viewLoc, 1, false, &view[0])

	for _, d := range drawables {
		vb, ok := d.Vertices.(*vertexBuffer)
		if !ok || d.IndexCount == 0 {
			continue
		}
		gl.BindVertexArray(vb.vao)
		gl.DrawElements(gl.TRIANGLES, int32(d.IndexCount), gl.UNSIGNED_INT, nil)
	}
	gl.BindVertexArray(0)
}

// NullBackend satisfies the engine's backend interface without touching the
// GPU, for headless runs and tests.
type NullBackend struct{}

type nullBuffer struct{}

func (nullBuffer) Destroy() {}

func (NullBackend) CreateVertexBuffer([]mesh.Vertex) engine.Buffer { return nullBuffer{} }

func (NullBackend) CreateIndexBuffer([]uint32) engine.Buffer { return nullBuffer{} }
