// Package mesh turns block volumes into triangle geometry. Hidden faces
// between two opaque blocks are culled; faces on the chunk boundary are
// always emitted since neighbor contents are unknown at build time.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"

	"cubeworld/internal/world"
)

// Vertex is one corner of a terrain quad.
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// TerrainMesh is the triangle geometry for a single chunk. Indices refer
// into Vertices and describe counter-clockwise triangles.
type TerrainMesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Empty reports whether the mesh has no geometry at all.
func (m *TerrainMesh) Empty() bool {
	return len(m.Indices) == 0
}

// Build meshes the given chunk volume. coord is the chunk's origin in
// global block coordinates and blocks must hold ChunkCube entries in
// flattened order.
func Build(coord world.ChunkCoord, blocks []world.Block) *TerrainMesh {
	m := &TerrainMesh{}
	for x := 0; x < world.ChunkSize; x++ {
		for y := 0; y < world.ChunkSize; y++ {
			for z := 0; z < world.ChunkSize; z++ {
				at := world.BlockCoord{X: x, Y: y, Z: z}
				block := blocks[at.Flatten()]
				if !block.Opaque() {
					continue
				}
				center := coord.ToGlobal(at).Vec3()
				color := block.Color()
				for _, dir := range Directions {
					if hiddenBy(blocks, at, dir) {
						continue
					}
					m.emitQuad(dir, center, color)
				}
			}
		}
	}
	return m
}

// hiddenBy reports whether the face of the block at `at` facing `dir` is
// covered by an opaque neighbor inside the same chunk.
func hiddenBy(blocks []world.Block, at world.BlockCoord, dir Direction) bool {
	dx, dy, dz := dir.Offset()
	n := world.BlockCoord{X: at.X + dx, Y: at.Y + dy, Z: at.Z + dz}
	if n.X < 0 || n.X >= world.ChunkSize ||
		n.Y < 0 || n.Y >= world.ChunkSize ||
		n.Z < 0 || n.Z >= world.ChunkSize {
		return false
	}
	return blocks[n.Flatten()].Opaque()
}

func (m *TerrainMesh) emitQuad(dir Direction, center, color mgl32.Vec3) {
	base := uint32(len(m.Vertices))
	for _, corner := range dir.corners(center) {
		m.Vertices = append(m.Vertices, Vertex{Position: corner, Color: color})
	}
	m.Indices = append(m.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}
