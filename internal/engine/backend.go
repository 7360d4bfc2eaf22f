package engine

import "cubeworld/internal/mesh"

// Buffer is a handle to geometry uploaded to the rendering backend.
type Buffer interface {
	Destroy()
}

// Backend uploads built meshes into drawable form. Implementations are
// only called from the main thread during Maintain.
type Backend interface {
	CreateVertexBuffer(vertices []mesh.Vertex) Buffer
	CreateIndexBuffer(indices []uint32) Buffer
}

// DrawableChunk pairs the uploaded buffers for one chunk's terrain mesh.
type DrawableChunk struct {
	Vertices   Buffer
	Indices    Buffer
	IndexCount int
}

func newDrawableChunk(b Backend, m *mesh.TerrainMesh) *DrawableChunk {
	return &DrawableChunk{
		Vertices:   b.CreateVertexBuffer(m.Vertices),
		Indices:    b.CreateIndexBuffer(m.Indices),
		IndexCount: len(m.Indices),
	}
}

func (d *DrawableChunk) destroy() {
	d.Vertices.Destroy()
	d.Indices.Destroy()
}
