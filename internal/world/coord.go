package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Chunk geometry. A chunk is a fixed-size cube of blocks; every coordinate
// conversion below is derived from these compile-time constants.
const (
	ChunkSize   = 16
	ChunkSquare = ChunkSize * ChunkSize
	ChunkCube   = ChunkSize * ChunkSize * ChunkSize
)

// ChunkID identifies a chunk on the chunk grid (one unit = one chunk).
type ChunkID struct {
	X int
	Y int
	Z int
}

// Coord returns the chunk's origin block position in global block units.
func (id ChunkID) Coord() ChunkCoord {
	return ChunkCoord{
		X: id.X * ChunkSize,
		Y: id.Y * ChunkSize,
		Z: id.Z * ChunkSize,
	}
}

// ChunkCoord is the origin block position of a chunk in global block units.
type ChunkCoord struct {
	X int
	Y int
	Z int
}

// ID returns the chunk-grid coordinate owning this origin. Floor division
// keeps the mapping consistent for negative coordinates.
func (c ChunkCoord) ID() ChunkID {
	return ChunkID{
		X: floorDiv(c.X, ChunkSize),
		Y: floorDiv(c.Y, ChunkSize),
		Z: floorDiv(c.Z, ChunkSize),
	}
}

// ToGlobal resolves a block offset within this chunk to its global position.
func (c ChunkCoord) ToGlobal(block BlockCoord) GlobalCoord {
	return GlobalCoord{
		X: c.X + block.X,
		Y: c.Y + block.Y,
		Z: c.Z + block.Z,
	}
}

// GlobalCoord is an absolute block position in the world.
type GlobalCoord struct {
	X int
	Y int
	Z int
}

// ChunkID locates the chunk containing this position, component-wise floor
// division so that e.g. global -1 maps to chunk -1, not chunk 0.
func (g GlobalCoord) ChunkID() ChunkID {
	return ChunkID{
		X: floorDiv(g.X, ChunkSize),
		Y: floorDiv(g.Y, ChunkSize),
		Z: floorDiv(g.Z, ChunkSize),
	}
}

// Chunk returns the origin of the chunk containing this position.
func (g GlobalCoord) Chunk() ChunkCoord {
	return g.ChunkID().Coord()
}

// Block returns the position's offset within its chunk, always in
// [0, ChunkSize) regardless of sign.
func (g GlobalCoord) Block() BlockCoord {
	return BlockCoord{
		X: floorMod(g.X, ChunkSize),
		Y: floorMod(g.Y, ChunkSize),
		Z: floorMod(g.Z, ChunkSize),
	}
}

// Vec3 converts the position to float vector form for rendering.
func (g GlobalCoord) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(g.X), float32(g.Y), float32(g.Z)}
}

// GlobalFromVec3 floors a continuous world position to the block containing it.
func GlobalFromVec3(v mgl32.Vec3) GlobalCoord {
	return GlobalCoord{
		X: int(math.Floor(float64(v.X()))),
		Y: int(math.Floor(float64(v.Y()))),
		Z: int(math.Floor(float64(v.Z()))),
	}
}

// BlockCoord is a block's offset within its chunk, components in [0, ChunkSize).
type BlockCoord struct {
	X int
	Y int
	Z int
}

// Flatten maps the offset to its index in a chunk's block array.
// Bijective with UnflattenBlock over [0, ChunkCube).
func (b BlockCoord) Flatten() int {
	return b.X*ChunkSquare + b.Y*ChunkSize + b.Z
}

// UnflattenBlock recovers the block offset from a flat array index. The
// function is total: out-of-range indices produce out-of-range offsets
// rather than wrapping.
func UnflattenBlock(idx int) BlockCoord {
	return BlockCoord{
		X: idx / ChunkSquare,
		Y: idx % ChunkSquare / ChunkSize,
		Z: idx % ChunkSize,
	}
}

func floorDiv(value, size int) int {
	if value >= 0 {
		return value / size
	}
	return -((-value - 1) / size) - 1
}

func floorMod(value, size int) int {
	m := value % size
	if m < 0 {
		m += size
	}
	return m
}
