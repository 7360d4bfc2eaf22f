package world

import "github.com/go-gl/mathgl/mgl32"

// Block enumerates the known block kinds. The set is closed: rendering and
// meshing switch over it directly instead of dispatching through an open
// interface.
type Block uint8

const (
	Air Block = iota
	Stone
	Dirt
	Grass
	Sand
)

// Opaque reports whether the block fully occludes adjacent faces.
func (b Block) Opaque() bool {
	return b != Air
}

// Color returns the block's static vertex color.
func (b Block) Color() mgl32.Vec3 {
	switch b {
	case Stone:
		return mgl32.Vec3{0.5, 0.5, 0.5}
	case Dirt:
		return mgl32.Vec3{0.55, 0.4, 0.25}
	case Grass:
		return mgl32.Vec3{0.486, 0.741, 0.419}
	case Sand:
		return mgl32.Vec3{0.86, 0.81, 0.55}
	default:
		return mgl32.Vec3{0, 0, 0}
	}
}

func (b Block) String() string {
	switch b {
	case Air:
		return "air"
	case Stone:
		return "stone"
	case Dirt:
		return "dirt"
	case Grass:
		return "grass"
	case Sand:
		return "sand"
	default:
		return "unknown"
	}
}
